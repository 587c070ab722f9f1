package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func mustMarshalValue(t *testing.T, v interface{}) (bsontype.Type, []byte) {
	t.Helper()
	typ, data, err := bson.MarshalValue(v)
	require.NoError(t, err)
	return typ, data
}

func TestTimestamp_UnmarshalNativeTimestamp(t *testing.T) {
	when := time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC)
	typ, data := mustMarshalValue(t, primitive.Timestamp{T: uint32(when.Unix())})

	var ts Timestamp
	require.NoError(t, ts.UnmarshalBSONValue(typ, data))
	require.True(t, ts.Known)
	require.True(t, ts.Time.Equal(when))
}

func TestTimestamp_UnmarshalDateTime(t *testing.T) {
	when := time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC)
	typ, data := mustMarshalValue(t, when)

	var ts Timestamp
	require.NoError(t, ts.UnmarshalBSONValue(typ, data))
	require.True(t, ts.Known)
	require.True(t, ts.Time.Equal(when))
}

func TestTimestamp_UnmarshalString(t *testing.T) {
	typ, data := mustMarshalValue(t, "2024-05-01T08:30:00Z")

	var ts Timestamp
	require.NoError(t, ts.UnmarshalBSONValue(typ, data))
	require.True(t, ts.Known)
	require.True(t, ts.Time.Equal(time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC)))
}

func TestTimestamp_UnparseableStringIsUnknown(t *testing.T) {
	typ, data := mustMarshalValue(t, "last tuesday")

	ts := At(time.Now()) // must be reset, not kept
	require.NoError(t, ts.UnmarshalBSONValue(typ, data))
	require.False(t, ts.Known)
}

func TestTimestamp_NullIsUnknown(t *testing.T) {
	var ts Timestamp
	require.NoError(t, ts.UnmarshalBSONValue(bsontype.Null, nil))
	require.False(t, ts.Known)
}

func TestTimestamp_MissingFieldIsUnknown(t *testing.T) {
	raw, err := bson.Marshal(bson.M{"imageUrl": "https://example.com/a.jpg", "rating": 3})
	require.NoError(t, err)

	var report Report
	require.NoError(t, bson.Unmarshal(raw, &report))
	require.False(t, report.CreatedAt.Known)
}

func TestTimestamp_DocumentRoundTrip(t *testing.T) {
	when := time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC)

	raw, err := bson.Marshal(Report{
		ImageURL:   "https://example.com/a.jpg",
		Rating:     5,
		RatingText: "very clean",
		CreatedAt:  At(when),
	})
	require.NoError(t, err)

	var report Report
	require.NoError(t, bson.Unmarshal(raw, &report))
	require.True(t, report.CreatedAt.Known)
	require.True(t, report.CreatedAt.Time.Equal(when))
	require.Equal(t, 5, report.Rating)
	require.Equal(t, "very clean", report.RatingText)
}

func TestTimestamp_UnknownMarshalsToNull(t *testing.T) {
	typ, _, err := Unknown().MarshalBSONValue()
	require.NoError(t, err)
	require.Equal(t, bsontype.Null, typ)
}

func TestTimestamp_JSON(t *testing.T) {
	when := time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC)

	out, err := At(when).MarshalJSON()
	require.NoError(t, err)
	require.JSONEq(t, `"2024-05-01T08:30:00Z"`, string(out))

	out, err = Unknown().MarshalJSON()
	require.NoError(t, err)
	require.Equal(t, "null", string(out))

	var ts Timestamp
	require.NoError(t, ts.UnmarshalJSON([]byte(`"2024-05-01T08:30:00Z"`)))
	require.True(t, ts.Known)

	require.NoError(t, ts.UnmarshalJSON([]byte(`null`)))
	require.False(t, ts.Known)
}
