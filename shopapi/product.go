package shopapi

import (
	"github.com/nirvanashop/shop-contract-tests/framework/opt"

	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"
)

// Product is a product object as returned by the backend. The harness does not depend on its
// schema beyond the id and name properties, so the rest of the JSON is kept as is.
type Product struct {
	raw ldvalue.Value
}

// NewProduct wraps a JSON value. It does not check that the value is an object.
func NewProduct(raw ldvalue.Value) Product {
	return Product{raw: raw}
}

// Raw returns the JSON value of the product.
func (p Product) Raw() ldvalue.Value {
	return p.raw
}

// ID returns the product's "id" property as a string. A numeric ID is returned in its JSON
// form. The ID is undefined if the property is missing, empty, zero, or of any other type.
func (p Product) ID() opt.Maybe[string] {
	v := p.raw.GetByKey("id")
	switch v.Type() {
	case ldvalue.StringType:
		if v.StringValue() != "" {
			return opt.Some(v.StringValue())
		}
	case ldvalue.NumberType:
		if v.Float64Value() != 0 {
			return opt.Some(v.JSONString())
		}
	}
	return opt.None[string]()
}

// Name returns the product's "name" property, if it is a string.
func (p Product) Name() opt.Maybe[string] {
	v := p.raw.GetByKey("name")
	if v.IsString() {
		return opt.Some(v.StringValue())
	}
	return opt.None[string]()
}

func (p Product) MarshalJSON() ([]byte, error) {
	return p.raw.MarshalJSON()
}

func (p Product) String() string {
	return p.raw.JSONString()
}
