package intent_test

import (
	"context"
	"testing"

	"github.com/theoremus-urban-solutions/route-chat/intent"
)

func TestRuleExtractorGreetings(t *testing.T) {
	e := intent.NewRuleExtractor()
	tests := []string{
		"hi",
		"Hello!",
		"hey there",
		"thank you",
		"thanks a lot",
		"how are you doing",
		"hi, bus from gomti nagar to airport",
	}
	for _, msg := range tests {
		t.Run(msg, func(t *testing.T) {
			it, err := e.Extract(context.Background(), msg)
			if err != nil {
				t.Fatalf("Extract(%q) error: %v", msg, err)
			}
			if it.Kind != intent.KindGreeting {
				t.Errorf("Extract(%q).Kind = %q, want greeting", msg, it.Kind)
			}
		})
	}
}

func TestRuleExtractorRoutes(t *testing.T) {
	e := intent.NewRuleExtractor()
	tests := []struct {
		name    string
		message string
		want    intent.Intent
	}{
		{
			"full form with time",
			"from gomti nagar to airport after 9:30",
			intent.Intent{Kind: intent.KindRouteQuery, From: "gomti nagar", To: "airport", AfterTime: "9:30"},
		},
		{
			"no from keyword with time",
			"gomti nagar to airport after 09:15",
			intent.Intent{Kind: intent.KindRouteQuery, From: "gomti nagar", To: "airport", AfterTime: "09:15"},
		},
		{
			"full form without time",
			"from charbagh to hazratganj",
			intent.Intent{Kind: intent.KindRouteQuery, From: "charbagh", To: "hazratganj"},
		},
		{
			"bare pair",
			"charbagh to hazratganj",
			intent.Intent{Kind: intent.KindRouteQuery, From: "charbagh", To: "hazratganj"},
		},
		{
			"bus prefix",
			"bus from alambagh to aminabad",
			intent.Intent{Kind: intent.KindRouteQuery, From: "alambagh", To: "aminabad"},
		},
		{
			"punctuation stripped",
			"from Gomti Nagar, to Airport!",
			intent.Intent{Kind: intent.KindRouteQuery, From: "gomti nagar", To: "airport"},
		},
		{
			"generic placeholders blanked",
			"from here to there",
			intent.Intent{Kind: intent.KindRouteQuery, From: "", To: ""},
		},
		{
			"time without colon stays in destination",
			"from gomti nagar to airport after 930",
			intent.Intent{Kind: intent.KindRouteQuery, From: "gomti nagar", To: "airport after"},
		},
		{
			"clock shape kept even out of range",
			"from a to b after 25:99",
			intent.Intent{Kind: intent.KindRouteQuery, From: "a", To: "b", AfterTime: "25:99"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Extract(context.Background(), tt.message)
			if err != nil {
				t.Fatalf("Extract(%q) error: %v", tt.message, err)
			}
			if got != tt.want {
				t.Errorf("Extract(%q) = %+v, want %+v", tt.message, got, tt.want)
			}
		})
	}
}

func TestRuleExtractorUnknown(t *testing.T) {
	e := intent.NewRuleExtractor()
	for _, msg := range []string{"what is the weather", "tell me about buses", ""} {
		it, err := e.Extract(context.Background(), msg)
		if err != nil {
			t.Fatalf("Extract(%q) error: %v", msg, err)
		}
		if it.Kind != intent.KindUnknown {
			t.Errorf("Extract(%q).Kind = %q, want unknown", msg, it.Kind)
		}
	}
}

func TestCleanPlace(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Bus from Charbagh", "charbagh"},
		{"from charbagh", "charbagh"},
		{"bus to airport", "airport"},
		{"to airport", "airport"},
		{"Gomti Nagar 2", "gomti nagar"},
		{"destination", ""},
		{"here", ""},
		{"   ", ""},
		{"hazratganj!", "hazratganj"},
	}
	for _, tt := range tests {
		if got := intent.CleanPlace(tt.in); got != tt.want {
			t.Errorf("CleanPlace(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCleanAfterTime(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"9:30", "9:30"},
		{" 10:05 ", "10:05"},
		{"25:99", "25:99"},
		{"930", ""},
		{"9:5", ""},
		{"evening", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := intent.CleanAfterTime(tt.in); got != tt.want {
			t.Errorf("CleanAfterTime(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
