package codec

import (
	"bytes"
	"testing"

	"github.com/hupe1980/mmcorpus/model"
	"github.com/hupe1980/mmcorpus/testutil"
)

// The benchmark drives each strategy over the same logical corpus and
// counts non-zero entries in a full pass, so the numbers compare decode
// cost per layout: two bulk reads (columnar), one bulk read plus in-place
// parsing (interleaved), or one read per pair (interleaved-scan).

func benchCorpus(b *testing.B, c DocumentCodec) ([]byte, int) {
	b.Helper()

	rng := testutil.NewRNG(42)
	_, docs := testutil.RandomCorpus(rng, 1000, 50000, 200)

	var buf bytes.Buffer
	for _, doc := range docs {
		if err := c.EncodeDocument(&buf, doc); err != nil {
			b.Fatalf("EncodeDocument failed: %v", err)
		}
	}
	return buf.Bytes(), len(docs)
}

func BenchmarkDecodeDocument(b *testing.B) {
	for _, c := range []DocumentCodec{Columnar{}, Interleaved{}, InterleavedScan{}} {
		b.Run(c.Name(), func(b *testing.B) {
			data, numDocs := benchCorpus(b, c)
			b.SetBytes(int64(len(data)))
			b.ResetTimer()

			for b.Loop() {
				r := bytes.NewReader(data)
				var nnz int
				for i := 0; i < numDocs; i++ {
					doc, err := c.DecodeDocument(r, true)
					if err != nil {
						b.Fatalf("DecodeDocument failed: %v", err)
					}
					nnz += len(doc.Entries)
				}
				if nnz == 0 {
					b.Fatal("empty corpus")
				}
			}
		})
	}
}

func BenchmarkEncodeDocument(b *testing.B) {
	rng := testutil.NewRNG(42)
	_, docs := testutil.RandomCorpus(rng, 1000, 50000, 200)

	for _, c := range []DocumentCodec{Columnar{}, Interleaved{}} {
		b.Run(c.Name(), func(b *testing.B) {
			var buf bytes.Buffer
			b.ResetTimer()

			for b.Loop() {
				buf.Reset()
				for _, doc := range docs {
					if err := c.EncodeDocument(&buf, doc); err != nil {
						b.Fatalf("EncodeDocument failed: %v", err)
					}
				}
			}
		})
	}
}

var benchSink model.Document

func BenchmarkDecodeSingleDocument(b *testing.B) {
	doc := model.Document{ID: 7}
	for i := 0; i < 500; i++ {
		doc.Entries = append(doc.Entries, model.Entry{TermID: int32(i * 3), Weight: float32(i)})
	}

	for _, c := range []DocumentCodec{Columnar{}, Interleaved{}, InterleavedScan{}} {
		b.Run(c.Name(), func(b *testing.B) {
			var buf bytes.Buffer
			if err := c.EncodeDocument(&buf, doc); err != nil {
				b.Fatalf("EncodeDocument failed: %v", err)
			}
			data := buf.Bytes()
			b.ResetTimer()

			for b.Loop() {
				d, err := c.DecodeDocument(bytes.NewReader(data), true)
				if err != nil {
					b.Fatalf("DecodeDocument failed: %v", err)
				}
				benchSink = d
			}
		})
	}
}
