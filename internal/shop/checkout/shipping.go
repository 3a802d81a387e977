package checkout

import "strings"

// ShippingDetails is what the shopper enters on the shipping step.
type ShippingDetails struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address   string `json:"address"`
	City      string `json:"city"`
	ZipCode   string `json:"zip_code"`
}

// Missing lists the blank fields by their JSON names.
func (d ShippingDetails) Missing() []string {
	var missing []string
	for _, f := range []struct {
		name, value string
	}{
		{"first_name", d.FirstName},
		{"last_name", d.LastName},
		{"address", d.Address},
		{"city", d.City},
		{"zip_code", d.ZipCode},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}
