// SPDX-License-Identifier: MIT

package harness_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusnet/internal/config"
	"github.com/katalvlaran/campusnet/internal/harness"
	"github.com/katalvlaran/campusnet/student"
)

func fastConfig() *config.Config {
	cfg := config.Default()
	cfg.Social.FriendLatency = time.Millisecond
	cfg.Social.ChatLatency = time.Millisecond

	return cfg
}

func checkErrs(r *harness.Report) map[string]error {
	out := make(map[string]error, len(r.Checks))
	for _, c := range r.Checks {
		out[c.Name] = c.Err
	}

	return out
}

func TestGrade_SamplesScoreFull(t *testing.T) {
	for _, strategy := range []string{"strongest", "fewest-hops"} {
		cfg := fastConfig()
		cfg.Strategy = strategy
		var out bytes.Buffer
		g := harness.NewGrader(cfg, nil, &out)

		for _, c := range harness.Samples() {
			r := g.Grade(context.Background(), c)
			assert.Equal(t, 100, r.MaxScore())
			assert.Equal(t, 100, r.Score(), "case %d (%s): %v", c.Number, strategy, checkErrs(r))
		}
		assert.Contains(t, out.String(), "Referral path to DummyCompany: [Greg, Ivy]")
		assert.Contains(t, out.String(), "Roommates: Alice & Bob")
		assert.Contains(t, out.String(), "Circle 2: [Dana, Evan]")
		assert.Contains(t, out.String(), "Chat: Alice -> Bob: Hello there!")
	}
}

func TestGrade_SingleStudent(t *testing.T) {
	g := harness.NewGrader(fastConfig(), nil, nil)
	r := g.Grade(context.Background(), harness.Case{
		Number:   9,
		Students: []*student.Student{student.New("Solo")},
	})
	errs := checkErrs(r)
	assert.ErrorIs(t, errs["concurrency"], harness.ErrNotEnoughStudents)
	assert.Equal(t, 100-harness.ConcurrencyPoints, r.Score())
}

func TestGrade_MissingReferral(t *testing.T) {
	g := harness.NewGrader(fastConfig(), nil, nil)
	r := g.Grade(context.Background(), harness.Case{
		Students:       []*student.Student{student.New("A"), student.New("B")},
		ExpectReferral: true,
	})
	assert.ErrorIs(t, checkErrs(r)["referral"], harness.ErrMissingReferral)
	assert.Equal(t, 100-harness.ReferralPoints, r.Score())
}

func TestGrade_DuplicateNames(t *testing.T) {
	g := harness.NewGrader(fastConfig(), nil, nil)
	r := g.Grade(context.Background(), harness.Case{
		Students: []*student.Student{student.New("A"), student.New("B"), student.New("A")},
	})
	errs := checkErrs(r)
	assert.Error(t, errs["graph"])
	assert.Error(t, errs["matching"])
	assert.ErrorIs(t, errs["referral"], harness.ErrSkipped)
	assert.ErrorIs(t, errs["integration"], harness.ErrSkipped)
	assert.Equal(t, harness.ConcurrencyPoints, r.Score())
}

func TestGrade_ActivityTimeout(t *testing.T) {
	cfg := fastConfig()
	cfg.Social.FriendLatency = time.Hour
	cfg.Social.Timeout = 20 * time.Millisecond
	g := harness.NewGrader(cfg, nil, nil)

	r := g.Grade(context.Background(), harness.Samples()[1])
	assert.ErrorIs(t, checkErrs(r)["concurrency"], harness.ErrActivityIncomplete)
	assert.ErrorIs(t, checkErrs(r)["concurrency"], context.DeadlineExceeded)
}

func TestGrade_CanceledReferral(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := harness.NewGrader(fastConfig(), nil, nil)

	r := g.Grade(ctx, harness.Samples()[1])
	errs := checkErrs(r)
	assert.ErrorIs(t, errs["referral"], context.Canceled)
	assert.NoError(t, errs["graph"])
	assert.NoError(t, errs["integration"])
}

func TestSamples_FreshRecords(t *testing.T) {
	a, b := harness.Samples(), harness.Samples()
	require.Len(t, a, 3)
	assert.NotSame(t, a[0].Students[0], b[0].Students[0])
	assert.True(t, a[1].ExpectReferral)
}
