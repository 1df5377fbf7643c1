package partner

import (
	"regexp"
	"time"

	"github.com/cartrade/backend/internal/domain/shared"
)

// CustomerType distinguishes private buyers from companies
type CustomerType string

const (
	CustomerTypeIndividual CustomerType = "individual"
	CustomerTypeCompany    CustomerType = "company"
)

// IsValid checks if the customer type is valid
func (t CustomerType) IsValid() bool {
	return t == CustomerTypeIndividual || t == CustomerTypeCompany
}

// phonePattern matches Algerian phone numbers: +213XXXXXXXXX or 0XXXXXXXXX
var phonePattern = regexp.MustCompile(`^(\+213|0)[1-9][0-9]{8}$`)

// wilayas maps the Algerian province codes to their names
var wilayas = map[string]string{
	"01": "Adrar", "02": "Chlef", "03": "Laghouat", "04": "Oum El Bouaghi",
	"05": "Batna", "06": "Béjaïa", "07": "Biskra", "08": "Béchar",
	"09": "Blida", "10": "Bouira", "11": "Tamanghasset", "12": "Tébessa",
	"13": "Tlemcen", "14": "Tiaret", "15": "Tizi Ouzou", "16": "Alger",
	"17": "Djelfa", "18": "Jijel", "19": "Sétif", "20": "Saïda",
	"21": "Skikda", "22": "Sidi Bel Abbès", "23": "Annaba", "24": "Guelma",
	"25": "Constantine", "26": "Médéa", "27": "Mostaganem", "28": "M'Sila",
	"29": "Mascara", "30": "Ouargla", "31": "Oran", "32": "El Bayadh",
	"33": "Illizi", "34": "Bordj Bou Arréridj", "35": "Boumerdès", "36": "El Tarf",
	"37": "Tindouf", "38": "Tissemsilt", "39": "El Oued", "40": "Khenchela",
	"41": "Souk Ahras", "42": "Tipaza", "43": "Mila", "44": "Aïn Defla",
	"45": "Naâma", "46": "Aïn Témouchent", "47": "Ghardaïa", "48": "Relizane",
}

// WilayaName returns the province name for a wilaya code
func WilayaName(code string) string {
	if name, ok := wilayas[code]; ok {
		return name
	}
	return code
}

// IsValidWilaya checks if the code is a known Algerian province
func IsValidWilaya(code string) bool {
	_, ok := wilayas[code]
	return ok
}

// Customer represents a local buyer, either an individual or a company
type Customer struct {
	shared.AuditedAggregateRoot
	Name     string       `json:"name"`
	Type     CustomerType `json:"type"`
	NIF      string       `json:"nif"`
	Phone    string       `json:"phone"`
	Email    string       `json:"email"`
	Address  string       `json:"address"`
	Wilaya   string       `json:"wilaya"`
	Notes    string       `json:"notes"`
	IsActive bool         `json:"is_active"`
}

// NewCustomer creates a new customer.
// Companies must carry a NIF tax identification number.
func NewCustomer(name string, customerType CustomerType, nif, phone, email, address, wilaya string) (*Customer, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_NAME", "Customer name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_NAME", "Customer name cannot exceed 200 characters")
	}
	if !customerType.IsValid() {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_TYPE", "Customer type must be individual or company")
	}
	if customerType == CustomerTypeCompany && nif == "" {
		return nil, shared.NewDomainError("NIF_REQUIRED", "NIF tax ID is required for company customers")
	}
	if !phonePattern.MatchString(phone) {
		return nil, shared.NewDomainError("INVALID_PHONE", "Phone must match +213XXXXXXXXX or 0XXXXXXXXX")
	}
	if !IsValidWilaya(wilaya) {
		return nil, shared.NewDomainError("INVALID_WILAYA", "Wilaya code is not a known province")
	}

	return &Customer{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(),
		Name:                 name,
		Type:                 customerType,
		NIF:                  nif,
		Phone:                phone,
		Email:                email,
		Address:              address,
		Wilaya:               wilaya,
		IsActive:             true,
	}, nil
}

// IsCompany returns true for company customers
func (c *Customer) IsCompany() bool {
	return c.Type == CustomerTypeCompany
}

// WilayaDisplay returns the customer's province name
func (c *Customer) WilayaDisplay() string {
	return WilayaName(c.Wilaya)
}

// Deactivate marks the customer as inactive
func (c *Customer) Deactivate() {
	c.IsActive = false
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}
