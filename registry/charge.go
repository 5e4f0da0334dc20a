package registry

// ChargeList is the set of charges registered against a company.
type ChargeList struct {
	TotalCount         int      `json:"totalCount"`
	UnfilteredCount    int      `json:"unfilteredCount"`
	SatisfiedCount     int      `json:"satisfiedCount"`
	PartSatisfiedCount int      `json:"partSatisfiedCount"`
	Charges            []Charge `json:"charges"`
}

// Charge is a mortgage or charge registered against a company.
type Charge struct {
	ChargeNumber    int           `json:"chargeNumber"`
	ChargeCode      *string       `json:"chargeCode,omitempty"`
	PersonsEntitled []string      `json:"personsEntitled,omitempty"`
	Status          string        `json:"status"`
	Type            string        `json:"type"`
	Description     string        `json:"description"`
	DeliveredOn     *string       `json:"deliveredOn,omitempty"`
	CreatedOn       *string       `json:"createdOn,omitempty"`
	SatisfiedOn     *string       `json:"satisfiedOn,omitempty"`
	Self            string        `json:"self"`
	Particulars     *ChargeDetail `json:"particulars,omitempty"`
	SecuredDetails  *ChargeDetail `json:"securedDetails,omitempty"`
	Transactions    []Transaction `json:"transactions,omitempty"`
}

// ChargeDetail is a typed free-text description attached to a charge.
type ChargeDetail struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Transaction is one filing made against a charge.
type Transaction struct {
	Type        string  `json:"type"`
	DeliveredOn string  `json:"deliveredOn"`
	Filing      *string `json:"filing,omitempty"`
}
