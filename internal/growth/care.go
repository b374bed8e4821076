package growth

import (
	"sort"
	"time"
)

// CareMultiplier is the instantaneous growth-speed factor for the given care ages:
//
//	water and fertilizer both applied within 24h  -> 1.5
//	water and fertilizer both untouched for 7d+    -> 0.5
//	anything else                                  -> 1.0
func CareMultiplier(sinceWater, sinceFertilize time.Duration) float64 {
	return float64(careRate(recencyOf(sinceWater), recencyOf(sinceFertilize))) / rateDenominator
}

type recency int

const (
	recencyNormal recency = iota
	recencyFresh
	recencyNeglected
)

func recencyOf(age time.Duration) recency {
	switch {
	case age < 0:
		return recencyNormal
	case age <= FreshWindow:
		return recencyFresh
	case age >= NeglectWindow:
		return recencyNeglected
	default:
		return recencyNormal
	}
}

func careRate(water, fertilizer recency) int64 {
	switch {
	case water == recencyFresh && fertilizer == recencyFresh:
		return rateFresh
	case water == recencyNeglected && fertilizer == recencyNeglected:
		return rateNeglected
	default:
		return rateNormal
	}
}

// track describes one care resource (water or fertilizer) over a tree's life.
//
// Only the latest application is stored. Before it, the resource is credited
// with the cadence implied by the application count: average gap between
// applications, measured from planting, classified with the same windows.
// That estimate never rates a moment below an untouched resource, so applying
// care can only raise growth. A resource that was never applied ages from
// planting but is never fresh.
type track struct {
	planted time.Time
	anchor  time.Time
	applied bool
	history recency
}

func newTrack(plantedAt time.Time, last *time.Time, applications int) track {
	if last == nil {
		return track{planted: plantedAt, anchor: plantedAt}
	}
	if applications < 1 {
		applications = 1
	}
	cadence := last.Sub(plantedAt) / time.Duration(applications)
	return track{planted: plantedAt, anchor: *last, applied: true, history: recencyOf(cadence)}
}

func (c track) at(t time.Time) recency {
	if c.applied && t.Before(c.anchor) {
		return better(c.history, untouched(c.planted, t))
	}
	if !c.applied {
		return untouched(c.anchor, t)
	}
	return recencyOf(t.Sub(c.anchor))
}

// untouched is the recency of a resource never applied since planting
func untouched(planted, t time.Time) recency {
	r := recencyOf(t.Sub(planted))
	if r == recencyFresh {
		return recencyNormal
	}
	return r
}

func rank(r recency) int {
	switch r {
	case recencyFresh:
		return 2
	case recencyNormal:
		return 1
	default:
		return 0
	}
}

func better(a, b recency) recency {
	if rank(b) > rank(a) {
		return b
	}
	return a
}

func (c track) breakpoints() []time.Time {
	return []time.Time{
		c.anchor, c.anchor.Add(FreshWindow), c.anchor.Add(NeglectWindow),
		c.planted.Add(NeglectWindow),
	}
}

// integrate returns the care-weighted length of [from, to] in rate units
// (nanoseconds x halves). Accumulation stops at limit so very old trees cannot
// overflow; the bool reports that the limit was reached.
func integrate(from, to time.Time, water, fertilizer track, limit int64) (int64, bool) {
	if !to.After(from) {
		return 0, false
	}

	points := []time.Time{from, to}
	for _, tr := range []track{water, fertilizer} {
		for _, p := range tr.breakpoints() {
			if p.After(from) && p.Before(to) {
				points = append(points, p)
			}
		}
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Before(points[j]) })

	var acc int64
	for i := 0; i+1 < len(points); i++ {
		a, b := points[i], points[i+1]
		seg := b.Sub(a)
		if seg <= 0 {
			continue
		}

		// Rates are constant between breakpoints; sample the open interval.
		mid := a.Add(seg / 2)
		rate := careRate(water.at(mid), fertilizer.at(mid))

		need := limit - acc
		if int64(seg) >= (need+rate-1)/rate {
			return limit, true
		}
		acc += int64(seg) * rate
	}
	return acc, false
}
