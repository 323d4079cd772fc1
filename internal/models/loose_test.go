package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestCourseDecodesLegacyShapes(t *testing.T) {
	cases := []struct {
		name     string
		doc      bson.M
		fee      float64
		duration Text
	}{
		{"fee as text", bson.M{"registrationFee": "25", "duration": "4 weeks"}, 25, "4 weeks"},
		{"fee as int32", bson.M{"registrationFee": int32(25), "duration": int32(3)}, 25, "3"},
		{"fee as int64", bson.M{"registrationFee": int64(40), "duration": 1.5}, 40, "1.5"},
		{"fee null", bson.M{"registrationFee": nil, "duration": nil}, 0, ""},
		{"fee blank", bson.M{"registrationFee": " "}, 0, ""},
		{"fee missing", bson.M{"title": "Go"}, 0, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw, err := bson.Marshal(tc.doc)
			require.NoError(t, err)

			var c Course
			require.NoError(t, bson.Unmarshal(raw, &c))
			assert.Equal(t, tc.fee, c.RegistrationFee.Float())
			assert.Equal(t, tc.duration, c.Duration)
		})
	}
}

func TestCourseDecodesDecimalFee(t *testing.T) {
	dec, err := bson.ParseDecimal128("19.99")
	require.NoError(t, err)
	raw, err := bson.Marshal(bson.M{"registrationFee": dec})
	require.NoError(t, err)

	var c Course
	require.NoError(t, bson.Unmarshal(raw, &c))
	assert.Equal(t, 19.99, c.RegistrationFee.Float())
}

func TestCourseDecodesDateAsText(t *testing.T) {
	at := time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC)
	raw, err := bson.Marshal(bson.M{"classStartTime": at, "registrationStartDate": "2026-04-01"})
	require.NoError(t, err)

	var c Course
	require.NoError(t, bson.Unmarshal(raw, &c))
	assert.Equal(t, Text("2026-05-01T09:30:00Z"), c.ClassStartTime)
	assert.Equal(t, Text("2026-04-01"), c.RegistrationStartDate)
}

func TestReviewDecodesRatingAsText(t *testing.T) {
	raw, err := bson.Marshal(bson.M{"sessionId": "abc", "rating": "4"})
	require.NoError(t, err)

	var rv Review
	require.NoError(t, bson.Unmarshal(raw, &rv))
	assert.Equal(t, 4.0, rv.Rating.Float())
}

func TestNumberRejectsGarbage(t *testing.T) {
	for _, v := range []any{"lots", true, bson.A{1}} {
		raw, err := bson.Marshal(bson.M{"rating": v})
		require.NoError(t, err)

		var rv Review
		assert.Error(t, bson.Unmarshal(raw, &rv), "%v", v)
	}
}

func TestNumberWritesDouble(t *testing.T) {
	raw, err := bson.Marshal(Course{RegistrationFee: 25, Duration: "3"})
	require.NoError(t, err)

	doc := bson.Raw(raw)
	assert.Equal(t, bson.TypeDouble, doc.Lookup("registrationFee").Type)
	assert.Equal(t, bson.TypeString, doc.Lookup("duration").Type)
}
