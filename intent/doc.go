/*
Package intent turns free-form chat messages into structured intents.

Two extractors implement the same interface: LLMExtractor asks a chat
completion model to emit intent JSON, and RuleExtractor parses the message
with a small regex grammar. Pipeline chains them so a remote failure of any
kind (network, rate limit, unparseable reply) silently degrades to the rule
grammar instead of surfacing to the caller.

	pipe := intent.NewPipeline(remote, nil)
	it, err := pipe.Extract(ctx, "from gomti nagar to airport after 9:00")
*/
package intent
