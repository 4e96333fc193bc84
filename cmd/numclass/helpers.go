package main

import (
	"strings"

	"github.com/Veraticus/number-classifier/internal/config"
	"github.com/Veraticus/number-classifier/internal/numbersapi"
	"github.com/Veraticus/number-classifier/internal/service"
)

// envKeyReplacer maps nested keys like facts.base_url to NUMCLASS_FACTS_BASE_URL.
var envKeyReplacer = strings.NewReplacer(".", "_")

// newFactFetcher builds the configured fact client. The returned close
// function must be called when the fetcher is no longer needed.
func newFactFetcher(offline bool) (service.FactFetcher, func(), error) {
	if offline {
		return numbersapi.Static(""), func() {}, nil
	}

	cfg, err := config.LoadFacts()
	if err != nil {
		return nil, nil, err
	}

	client, err := numbersapi.NewClient(cfg)
	if err != nil {
		return nil, nil, err
	}
	return client, client.Close, nil
}
