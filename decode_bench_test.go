package bo4e_test

import (
	"testing"

	bo4e "github.com/voltmesh/bo4e-go"
	"github.com/voltmesh/bo4e-go/bo"
)

func benchDoc(b *testing.B) []byte {
	b.Helper()
	data, err := bo4e.Marshal(testInvoice())
	if err != nil {
		b.Fatal(err)
	}
	return data
}

func BenchmarkUnmarshal(b *testing.B) {
	doc := benchDoc(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var inv bo.Invoice
		if err := bo4e.Unmarshal(doc, &inv); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUnmarshalOwned(b *testing.B) {
	doc := benchDoc(b)
	buf := make([]byte, len(doc))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(buf, doc)
		var inv bo.Invoice
		if err := bo4e.UnmarshalOwned(buf, &inv); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMarshal(b *testing.B) {
	inv := testInvoice()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bo4e.Marshal(inv); err != nil {
			b.Fatal(err)
		}
	}
}
