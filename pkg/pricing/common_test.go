package pricing

import "testing"

func TestExtractOnDemandPrice(t *testing.T) {
	priceJSON := `{
		"terms": {
			"OnDemand": {
				"ABCDEF.JRTCKXETXF": {
					"offerTermCode": "JRTCKXETXF",
					"sku": "ABCDEF",
					"priceDimensions": {
						"ABCDEF.JRTCKXETXF.6YS6EN2CT7": {
							"pricePerUnit": {
								"USD": "0.1000000000"
							}
						}
					}
				}
			}
		}
	}`

	price, err := ExtractOnDemandPrice(priceJSON)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if price != 0.1 {
		t.Fatalf("expected price 0.1, got %v", price)
	}
}

func TestExtractOnDemandPriceNoUSD(t *testing.T) {
	priceJSON := `{
		"terms": {
			"OnDemand": {
				"ABCDEF.JRTCKXETXF": {
					"priceDimensions": {
						"ABCDEF.JRTCKXETXF.6YS6EN2CT7": {
							"pricePerUnit": {
								"EUR": "0.0900000000"
							}
						}
					}
				}
			}
		}
	}`

	if _, err := ExtractOnDemandPrice(priceJSON); err == nil {
		t.Fatal("expected error when USD price dimension is missing")
	}
}

func TestExtractOnDemandPriceNoTerms(t *testing.T) {
	if _, err := ExtractOnDemandPrice(`{"product": {}}`); err == nil {
		t.Fatal("expected error when terms field is missing")
	}
}

func TestExtractOnDemandPriceInvalidJSON(t *testing.T) {
	if _, err := ExtractOnDemandPrice(`not json`); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}
