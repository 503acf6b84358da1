package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetails_SetGet(t *testing.T) {
	var d Details

	d.Set("Quantity", "60 capsules")
	d.Set("Dosage", "2 capsules daily")

	v, ok := d.Get("Quantity")
	assert.True(t, ok)
	assert.Equal(t, "60 capsules", v)

	_, ok = d.Get("Missing")
	assert.False(t, ok)

	assert.Equal(t, 2, d.Len())
	assert.Equal(t, []string{"Quantity", "Dosage"}, d.Keys())
}

func TestDetails_SetExistingKeepsPosition(t *testing.T) {
	d := NewDetails("A", "1", "B", "2", "C", "3")

	d.Set("B", "22")

	assert.Equal(t, []string{"A", "B", "C"}, d.Keys())
	v, _ := d.Get("B")
	assert.Equal(t, "22", v)
}

func TestDetails_MarshalPreservesInsertionOrder(t *testing.T) {
	// Keys chosen so alphabetical order differs from insertion order.
	d := NewDetails(
		"Quantity", "100g powder",
		"Dosage", "1 tsp twice daily",
		"Category", "Digestive Health",
	)

	data, err := json.Marshal(d)
	require.NoError(t, err)

	assert.Equal(t, `{"Quantity":"100g powder","Dosage":"1 tsp twice daily","Category":"Digestive Health"}`, string(data))
}

func TestDetails_UnmarshalPreservesDocumentOrder(t *testing.T) {
	input := `{"Zeta":"z","Alpha":"a","Mid":"m"}`

	var d Details
	err := json.Unmarshal([]byte(input), &d)
	require.NoError(t, err)

	assert.Equal(t, []string{"Zeta", "Alpha", "Mid"}, d.Keys())
}

func TestDetails_RoundTrip(t *testing.T) {
	original := NewDetails(
		"Quantity", "90 tablets",
		"Dosage", "1 tablet daily",
		"Category", "Immunity",
	)

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Details
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.True(t, original.Equal(decoded))
}

func TestDetails_EmptyMarshalsAsObject(t *testing.T) {
	var d Details

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

func TestDetails_UnmarshalNull(t *testing.T) {
	var d Details
	err := json.Unmarshal([]byte(`null`), &d)
	require.NoError(t, err)
	assert.Equal(t, 0, d.Len())
}

func TestDetails_UnmarshalNonObjectFails(t *testing.T) {
	var d Details
	err := json.Unmarshal([]byte(`["not","an","object"]`), &d)
	assert.Error(t, err)
}

func TestDetails_UnmarshalCoercesScalars(t *testing.T) {
	var d Details
	err := json.Unmarshal([]byte(`{"Count":60,"Organic":true}`), &d)
	require.NoError(t, err)

	v, _ := d.Get("Count")
	assert.Equal(t, "60", v)
	v, _ = d.Get("Organic")
	assert.Equal(t, "true", v)
}

func TestDetails_Equal(t *testing.T) {
	a := NewDetails("X", "1", "Y", "2")
	b := NewDetails("X", "1", "Y", "2")
	differentOrder := NewDetails("Y", "2", "X", "1")
	differentValue := NewDetails("X", "1", "Y", "3")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(differentOrder))
	assert.False(t, a.Equal(differentValue))
}

func TestProduct_JSONRoundTrip(t *testing.T) {
	image := "data:image/png;base64,AAAA"
	p := Product{
		ID:          1700000000000,
		Name:        "Test Product",
		Description: "d",
		Price:       "₹10",
		Details:     NewDetails("Quantity", "1"),
		Image:       &image,
	}

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var decoded Product
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, p.ID, decoded.ID)
	assert.Equal(t, p.Name, decoded.Name)
	assert.Equal(t, p.Price, decoded.Price)
	assert.True(t, p.Details.Equal(decoded.Details))
	require.NotNil(t, decoded.Image)
	assert.Equal(t, image, *decoded.Image)
}

func TestProduct_NullImage(t *testing.T) {
	var p Product
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"name":"x","image":null}`), &p))
	assert.Nil(t, p.Image)

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"image":null`)
}

func TestDefaultProducts(t *testing.T) {
	products := DefaultProducts()
	require.Len(t, products, 6)

	assert.Equal(t, int64(1), products[0].ID)
	assert.Equal(t, "Ashwagandha Capsules", products[0].Name)
	assert.Equal(t, "₹450", products[0].Price)

	// Detail labels must come out in authoring order for display.
	assert.Equal(t, []string{"Quantity", "Dosage", "Category"}, products[0].Details.Keys())
}

func TestDefaultProfile(t *testing.T) {
	profile := DefaultProfile()
	assert.Equal(t, "Natural Health Clinic", profile.CompanyName)
	assert.Equal(t, "Dr. Ayurveda", profile.DoctorName)
	assert.Nil(t, profile.Image)
}
