package shopapi

import (
	"fmt"

	"github.com/launchdarkly/go-jsonstream/v3/jreader"
	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"
)

// ProductsResponse is the body of a successful GET /products.
type ProductsResponse struct {
	Products []Product
}

// ProductResponse is the body of a successful GET /products/{id}.
type ProductResponse struct {
	Product Product
}

// ErrorResponse is the body the backend sends with an error status.
type ErrorResponse struct {
	Error string
}

// ParseProductsResponse decodes {"success": true, "products": [...]}.
func ParseProductsResponse(body []byte) (ProductsResponse, error) {
	props, err := readEnvelope(body, "products")
	if err != nil {
		return ProductsResponse{}, err
	}
	if err := requireSuccess(props, body); err != nil {
		return ProductsResponse{}, err
	}
	products := props["products"]
	if products.Type() != ldvalue.ArrayType {
		return ProductsResponse{}, MalformedBodyError{
			Reason: fmt.Sprintf(`"products" should be an array, was %s`, products.Type()),
			Body:   body,
		}
	}
	ret := ProductsResponse{Products: make([]Product, 0, products.Count())}
	for i := 0; i < products.Count(); i++ {
		ret.Products = append(ret.Products, NewProduct(products.GetByIndex(i)))
	}
	return ret, nil
}

// ParseProductResponse decodes {"success": true, "product": {...}}.
func ParseProductResponse(body []byte) (ProductResponse, error) {
	props, err := readEnvelope(body, "product")
	if err != nil {
		return ProductResponse{}, err
	}
	if err := requireSuccess(props, body); err != nil {
		return ProductResponse{}, err
	}
	product := props["product"]
	if product.Type() != ldvalue.ObjectType {
		return ProductResponse{}, MalformedBodyError{
			Reason: fmt.Sprintf(`"product" should be an object, was %s`, product.Type()),
			Body:   body,
		}
	}
	return ProductResponse{Product: NewProduct(product)}, nil
}

// ParseErrorResponse decodes {"success": false, "error": "..."}.
func ParseErrorResponse(body []byte) (ErrorResponse, error) {
	props, err := readEnvelope(body, "error")
	if err != nil {
		return ErrorResponse{}, err
	}
	if props["success"].BoolValue() {
		return ErrorResponse{}, MalformedBodyError{Reason: `"success" should be false`, Body: body}
	}
	message := props["error"]
	if !message.IsString() {
		return ErrorResponse{}, MalformedBodyError{Reason: `"error" should be a string`, Body: body}
	}
	return ErrorResponse{Error: message.StringValue()}, nil
}

// readEnvelope reads the top-level object of a response, keeping only "success" and the named
// payload property. Both must be present.
func readEnvelope(body []byte, payloadName string) (map[string]ldvalue.Value, error) {
	props := make(map[string]ldvalue.Value)
	r := jreader.NewReader(body)
	for obj := r.Object(); obj.Next(); {
		name := string(obj.Name())
		if name != "success" && name != payloadName {
			r.SkipValue()
			continue
		}
		var v ldvalue.Value
		v.ReadFromJSONReader(&r)
		props[name] = v
	}
	if err := r.Error(); err != nil {
		return nil, MalformedBodyError{Reason: fmt.Sprintf("expected a JSON object (%s)", err), Body: body}
	}
	if err := r.RequireEOF(); err != nil {
		return nil, MalformedBodyError{Reason: fmt.Sprintf("unexpected data after JSON object (%s)", err), Body: body}
	}
	for _, name := range []string{"success", payloadName} {
		if _, ok := props[name]; !ok {
			return nil, MalformedBodyError{Reason: fmt.Sprintf("missing %q property", name), Body: body}
		}
	}
	return props, nil
}

func requireSuccess(props map[string]ldvalue.Value, body []byte) error {
	if success := props["success"]; !success.BoolValue() {
		return MalformedBodyError{Reason: fmt.Sprintf(`"success" should be true, was %s`, success.JSONString()), Body: body}
	}
	return nil
}
