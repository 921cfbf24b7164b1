package cryptools

import (
	"errors"
	"testing"

	"github.com/scoobybejesus/cryptools/date"
)

func TestSettingsValidate(t *testing.T) {
	s := NewSettings()
	if err := s.Validate(); err != nil {
		t.Errorf("default settings: unexpected error %v", err)
	}

	s.HomeCurrency = "NOPE"
	if err := s.Validate(); !errors.Is(err, ErrUnknownCurrency) {
		t.Errorf("bogus home currency: got %v, want ErrUnknownCurrency", err)
	}

	s = NewSettings()
	s.CostingMethod = 0
	if err := s.Validate(); err == nil {
		t.Error("costing method 0 expected an error")
	}
}

func TestSettingsIsHome(t *testing.T) {
	s := NewSettings()
	if !s.IsHome("usd") || !s.IsHome("USD") {
		t.Error("IsHome should be case-insensitive")
	}
	if s.IsHome("EUR") {
		t.Error("EUR is not the home currency")
	}
}

func TestSettingsLikeKindEnabled(t *testing.T) {
	s := NewSettings()
	if s.LikeKindEnabled() {
		t.Error("like-kind enabled with no cutoff date")
	}
	s.LikeKindCutoff = date.MustParse("2018-12-31")
	if !s.LikeKindEnabled() {
		t.Error("like-kind not enabled with a cutoff date")
	}
}
