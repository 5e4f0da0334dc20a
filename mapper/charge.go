package mapper

import "github.com/tpgainz/companies-house/registry"

// ChargeList maps the company charges response.
func ChargeList(fields map[string]any) (registry.ChargeList, error) {
	o := NewObject(fields)

	items := o.Children("items")
	list := registry.ChargeList{
		TotalCount:         o.Int("total_count"),
		UnfilteredCount:    o.Int("unfiltered_count"),
		SatisfiedCount:     o.Int("satisfied_count"),
		PartSatisfiedCount: o.Int("part_satisfied_count"),
		Charges:            make([]registry.Charge, 0, len(items)),
	}
	for _, item := range items {
		list.Charges = append(list.Charges, charge(item))
	}

	if err := o.Err(); err != nil {
		return registry.ChargeList{}, err
	}
	return list, nil
}

// Charge maps a single charge.
func Charge(fields map[string]any) (registry.Charge, error) {
	o := NewObject(fields)
	c := charge(o)
	if err := o.Err(); err != nil {
		return registry.Charge{}, err
	}
	return c, nil
}

// Transaction maps one filing made against a charge.
func Transaction(fields map[string]any) (registry.Transaction, error) {
	o := NewObject(fields)
	tx := transaction(o)
	if err := o.Err(); err != nil {
		return registry.Transaction{}, err
	}
	return tx, nil
}

func charge(o Object) registry.Charge {
	classification := o.Child("classification")

	c := registry.Charge{
		ChargeNumber:   o.Int("charge_number"),
		ChargeCode:     o.OptString("charge_code"),
		Status:         o.String("status"),
		Type:           classification.String("type"),
		Description:    classification.String("description"),
		DeliveredOn:    o.OptString("delivered_on"),
		CreatedOn:      o.OptString("created_on"),
		SatisfiedOn:    o.OptString("satisfied_on"),
		Self:           o.Child("links").String("self"),
		Particulars:    chargeDetail(o, "particulars"),
		SecuredDetails: chargeDetail(o, "secured_details"),
	}

	if persons := o.OptChildren("persons_entitled"); persons != nil {
		c.PersonsEntitled = make([]string, 0, len(persons))
		for _, p := range persons {
			c.PersonsEntitled = append(c.PersonsEntitled, p.String("name"))
		}
	}

	if txs := o.OptChildren("transactions"); txs != nil {
		c.Transactions = make([]registry.Transaction, 0, len(txs))
		for _, tx := range txs {
			c.Transactions = append(c.Transactions, transaction(tx))
		}
	}

	return c
}

func chargeDetail(o Object, key string) *registry.ChargeDetail {
	d, ok := o.OptChild(key)
	if !ok {
		return nil
	}
	return &registry.ChargeDetail{
		Type:        d.String("type"),
		Description: d.String("description"),
	}
}

func transaction(o Object) registry.Transaction {
	tx := registry.Transaction{
		Type:        o.String("filing_type"),
		DeliveredOn: o.String("delivered_on"),
	}
	if links, ok := o.OptChild("links"); ok {
		tx.Filing = links.OptString("filing")
	}
	return tx
}
