package editor

import (
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jask/skydial/internal/astro"
	"github.com/jask/skydial/internal/catalog"
)

var epoch = time.Date(2024, 3, 20, 21, 0, 0, 0, time.UTC)

func entry() catalog.Entry {
	return catalog.Entry{
		ID:          "a1",
		Name:        "Vega",
		Declination: astro.Declination{Degree: 38, Minute: 47},
		HourAngle:   astro.HourAngle{Hour: 18, Minute: 36, Second: 56},
		Timestamp:   epoch,
	}
}

func TestNewDraftDefaults(t *testing.T) {
	t.Parallel()

	d := NewDraft(epoch)
	assert.Equal(t, "New Object", d.Name)
	assert.Equal(t, astro.Declination{Degree: 90}, d.Declination)
	assert.Equal(t, astro.HourAngle{Hour: 6}, d.HourAngle)
	assert.Equal(t, epoch, d.Timestamp)
}

func TestChangesPatchOnlyEditedFields(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClockAt(epoch.Add(time.Hour))
	ed := New(clock)
	orig := entry()

	assert.Empty(t, ed.Changes(orig, DraftFrom(orig)))

	d := DraftFrom(orig)
	d.Name = "Alpha Lyrae"
	patches := ed.Changes(orig, d)
	require.Len(t, patches, 1)
	require.NotNil(t, patches[0].Name)
	assert.Equal(t, "Alpha Lyrae", *patches[0].Name)
	assert.Nil(t, patches[0].Timestamp)

	d = DraftFrom(orig)
	d.Declination.Minute = 48
	patches = ed.Changes(orig, d)
	require.Len(t, patches, 1)
	assert.Nil(t, patches[0].Name)
	assert.Nil(t, patches[0].Timestamp)
	assert.Equal(t, astro.Declination{Degree: 38, Minute: 48}, *patches[0].Declination)

	d = DraftFrom(orig)
	d.HourAngle = astro.HourAngle{Hour: 1}
	patches = ed.Changes(orig, d)
	require.Len(t, patches, 1)
	assert.Equal(t, astro.HourAngle{Hour: 1}, *patches[0].HourAngle)
	require.NotNil(t, patches[0].Timestamp)
	assert.Equal(t, epoch.Add(time.Hour), *patches[0].Timestamp)
}

func TestChangesApplyThroughState(t *testing.T) {
	t.Parallel()

	ed := New(clockwork.NewFakeClockAt(epoch.Add(time.Minute)))
	orig := entry()
	d := DraftFrom(orig)
	d.Name = "Renamed"
	d.HourAngle = astro.HourAngle{Hour: 3}

	s := catalog.NewState([]catalog.Entry{orig})
	for _, p := range ed.Changes(orig, d) {
		s = s.Update(p)
	}
	got, ok := s.Lookup("a1")
	require.True(t, ok)
	assert.Equal(t, "Renamed", got.Name)
	assert.Equal(t, astro.HourAngle{Hour: 3}, got.HourAngle)
	assert.Equal(t, epoch.Add(time.Minute), got.Timestamp)
	assert.Equal(t, orig.Declination, got.Declination)
}

func TestCreateAndPreview(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClockAt(epoch)
	ed := New(clock)
	d := NewDraft(clock.Now())

	e := ed.Create(d)
	assert.Empty(t, e.ID)
	assert.Equal(t, epoch, e.Timestamp)

	p := ed.Preview(d, astro.DefaultMount)
	assert.Equal(t, 0.0, p.DeclinationRotation)
	assert.Equal(t, 0.0, p.HourAngleRotation)

	clock.Advance(time.Hour)
	p = ed.Preview(d, astro.DefaultMount)
	assert.Equal(t, astro.HourAngle{Hour: 7}, p.HourAngle)
	assert.InDelta(t, 15.0, p.HourAngleRotation, 1e-9)

	d = ed.SetHourAngle(d, astro.HourAngle{Hour: 6, Minute: 30})
	assert.Equal(t, epoch.Add(time.Hour), d.Timestamp)
	assert.Equal(t, astro.HourAngle{Hour: 6, Minute: 30}, ed.Preview(d, astro.DefaultMount).HourAngle)
}

func TestParse(t *testing.T) {
	t.Parallel()

	dec, err := ParseDeclination("-16", " 42.9 ")
	require.NoError(t, err)
	assert.Equal(t, astro.Declination{Degree: -16, Minute: 42.9}, dec)

	dec, err = ParseDeclination("", "")
	require.NoError(t, err)
	assert.Equal(t, astro.Declination{}, dec)

	ha, err := ParseHourAngle("23", "59", "")
	require.NoError(t, err)
	assert.Equal(t, astro.HourAngle{Hour: 23, Minute: 59}, ha)

	name, err := ParseName("  Deneb ")
	require.NoError(t, err)
	assert.Equal(t, "Deneb", name)

	cases := []struct {
		field string
		err   error
	}{
		{FieldName, func() error { _, err := ParseName(" "); return err }()},
		{FieldDecDegree, func() error { _, err := ParseDeclination("91", "0"); return err }()},
		{FieldDecDegree, func() error { _, err := ParseDeclination("NaN", "0"); return err }()},
		{FieldDecMinute, func() error { _, err := ParseDeclination("10", "60"); return err }()},
		{FieldDecMinute, func() error { _, err := ParseDeclination("10", "-1"); return err }()},
		{FieldHour, func() error { _, err := ParseHourAngle("24", "0", "0"); return err }()},
		{FieldHour, func() error { _, err := ParseHourAngle("1.5", "0", "0"); return err }()},
		{FieldMinute, func() error { _, err := ParseHourAngle("1", "x", "0"); return err }()},
		{FieldSecond, func() error { _, err := ParseHourAngle("1", "0", "60"); return err }()},
	}
	for _, tc := range cases {
		var ferr *FieldError
		require.True(t, errors.As(tc.err, &ferr), "%s: %v", tc.field, tc.err)
		assert.Equal(t, tc.field, ferr.Field)
	}
}
