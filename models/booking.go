package models

import (
	"encoding/json"
	"math"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Amount is a decimal amount that accepts either a JSON number or a
// numeric string on input. Unparsable input coerces to NaN rather than
// failing the request, matching the historical behavior of the API.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case float64:
		*a = Amount(v)
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			*a = Amount(math.NaN())
			return nil
		}
		*a = Amount(f)
	default:
		*a = Amount(math.NaN())
	}
	return nil
}

// MarshalJSON renders NaN as null; encoding/json rejects NaN outright.
func (a Amount) MarshalJSON() ([]byte, error) {
	f := float64(a)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

// Booking represents a customer's reservation of a Service.
type Booking struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ServiceID    string             `bson:"serviceId" json:"serviceId"`
	ServiceTitle string             `bson:"serviceTitle,omitempty" json:"serviceTitle,omitempty"`
	CustomerName string             `bson:"customerName,omitempty" json:"customerName,omitempty"`
	Email        string             `bson:"email" json:"email"`
	Phone        string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Date         string             `bson:"date,omitempty" json:"date,omitempty"`
	Img          string             `bson:"img,omitempty" json:"img,omitempty"`
	DueAmount    Amount             `bson:"dueAmount" json:"dueAmount"`
}

// UnmarshalJSON coerces an absent dueAmount to NaN as well: the zero
// value of a float would otherwise masquerade as a real amount.
func (b *Booking) UnmarshalJSON(data []byte) error {
	type alias Booking
	aux := struct {
		DueAmount *Amount `json:"dueAmount"`
		*alias
	}{alias: (*alias)(b)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.DueAmount == nil {
		b.DueAmount = Amount(math.NaN())
	} else {
		b.DueAmount = *aux.DueAmount
	}
	return nil
}

// BookingUpdate carries a partial booking: only non-nil fields are
// written, everything else on the stored record is left untouched.
type BookingUpdate struct {
	ServiceID    *string `json:"serviceId"`
	ServiceTitle *string `json:"serviceTitle"`
	CustomerName *string `json:"customerName"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Date         *string `json:"date"`
	Img          *string `json:"img"`
	DueAmount    *Amount `json:"dueAmount"`
}

// SetDocument builds the $set payload from the supplied fields.
func (u BookingUpdate) SetDocument() bson.M {
	set := bson.M{}
	if u.ServiceID != nil {
		set["serviceId"] = *u.ServiceID
	}
	if u.ServiceTitle != nil {
		set["serviceTitle"] = *u.ServiceTitle
	}
	if u.CustomerName != nil {
		set["customerName"] = *u.CustomerName
	}
	if u.Email != nil {
		set["email"] = *u.Email
	}
	if u.Phone != nil {
		set["phone"] = *u.Phone
	}
	if u.Date != nil {
		set["date"] = *u.Date
	}
	if u.Img != nil {
		set["img"] = *u.Img
	}
	if u.DueAmount != nil {
		set["dueAmount"] = float64(*u.DueAmount)
	}
	return set
}

// BookingFilter narrows a booking listing; both fields combine with
// logical AND when set.
type BookingFilter struct {
	ServiceID string
	Email     string
}

// IsEmpty reports whether no criterion was supplied.
func (f BookingFilter) IsEmpty() bool {
	return f.ServiceID == "" && f.Email == ""
}

// Query builds the Mongo filter document.
func (f BookingFilter) Query() bson.M {
	query := bson.M{}
	if f.ServiceID != "" {
		query["serviceId"] = f.ServiceID
	}
	if f.Email != "" {
		query["email"] = f.Email
	}
	return query
}
