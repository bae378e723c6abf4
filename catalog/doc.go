/*
Package catalog provides route dataset loading and indexing.

The dataset is a CSV table of directed bus segments. The package is
data-source agnostic: it accepts any io.Reader and builds an in-memory
index, with convenience loaders for local files and HTTP URLs.

# Basic Usage

	cat, err := catalog.LoadFile("data/bus_routes.csv")
	if err != nil {
	    log.Fatal(err)
	}

	routes := cat.RoutesMatching("Gomti Nagar", "Amausi Airport")
	from := cat.FromOptions()

# Dataset Format

The header row must contain the columns route_id, from_stop, to_stop,
bus_number, departure_time (HH:MM, 24h), duration_minutes (positive
integer) and stops (pipe-delimited ordered stop list). Malformed rows are
dropped and reported in consolidated warnings; a dataset with no usable
rows at all fails with DataError.

# Load Once

The catalog is immutable after load and safe for concurrent readers.
Parse the dataset once at startup and share the index; there is no reload
path short of restarting the process.
*/
package catalog
