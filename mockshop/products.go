package mockshop

import "github.com/launchdarkly/go-sdk-common/v3/ldvalue"

// SampleProducts returns a small catalogue shaped like the hosted backend's rows.
func SampleProducts() []ldvalue.Value {
	return []ldvalue.Value{
		product("9f1c2b9e-1d7a-4a43-9d3f-2f3c7a1e5b10", "Sandalwood Incense", "Incense", 4.99, 120),
		product("5b2e8f4a-77c3-4c0e-a5d8-0d9e6b1f2a33", "Brass Singing Bowl", "Meditation", 39.5, 12),
	}
}

func product(id, name, category string, price float64, stock int) ldvalue.Value {
	return ldvalue.ObjectBuild().
		Set("id", ldvalue.String(id)).
		Set("name", ldvalue.String(name)).
		Set("description", ldvalue.String(name+" from the Nirvana collection")).
		Set("price", ldvalue.Float64(price)).
		Set("image_url", ldvalue.String("https://example.com/"+id+".jpg")).
		Set("category", ldvalue.String(category)).
		Set("stock", ldvalue.Int(stock)).
		Build()
}
