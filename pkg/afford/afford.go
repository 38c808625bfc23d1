// Package afford maps a USD amount to an illustrative purchase example.
// The mapping is a fixed ordered table of exclusive upper bounds searched
// first-match-above, so the boundary list stays testable as data.
package afford

// bucket pairs an exclusive upper bound with its illustrative label.
type bucket struct {
	bound int64
	label string
}

// Sentinel is returned for amounts at or below zero.
const Sentinel = "☠️"

// catchAll covers amounts at or beyond the final finite bound.
const catchAll = "small country's GDP 🌍"

// buckets must stay sorted by ascending bound.
var buckets = []bucket{
	{100, "nice dinner for two 🍽️"},
	{200, "pair of Nike shoes 👟"},
	{300, "weekend hotel stay 🏨"},
	{500, "budget smartphone 📱"},
	{750, "round-trip domestic flight ✈️"},
	{1000, "month's rent in a small town 🏠"},
	{2000, "gaming console 🎮"},
	{3000, "high-end laptop 💻"},
	{5000, "used motorcycle 🏍️"},
	{7500, "home theater system 📺"},
	{10000, "semester at community college 🎓"},
	{25000, "decent used car 🚗"},
	{35000, "new economy car 🚙"},
	{50000, "wedding celebration 💒"},
	{75000, "year at private university 🎓"},
	{100000, "Tesla Model 3 🚘"},
	{150000, "mobile home 🏠"},
	{250000, "small apartment in suburbs 🏢"},
	{350000, "condo in a major city 🌃"},
	{500000, "nice house in most cities 🏡"},
	{750000, "beach house 🏖️"},
	{1500000, "luxury yacht ⛵"},
	{2000000, "Bugatti supercar 🏎️"},
	{3000000, "penthouse apartment 🏙️"},
	{5000000, "private jet share ✈️"},
	{7500000, "small vineyard 🍇"},
	{10000000, "mansion in Beverly Hills 🏰"},
	{20000000, "private jet ✈️"},
	{30000000, "luxury hotel 🏨"},
	{50000000, "private island 🏝️"},
	{75000000, "minor league sports team ⚾"},
	{100000000, "professional sports team 🏈"},
	{200000000, "skyscraper 🏢"},
	{300000000, "cruise ship 🚢"},
	{500000000, "space tourism ticket 🚀"},
	{750000000, "major hospital 🏥"},
	{1000000000, "satellite constellation 🛰️"},
	{5000000000, "nuclear power plant ⚡"},
	{10000000000, "An aircraft carrier 🚢"},
}

// Classify returns the illustrative label for a USD amount. Total over all
// integers: non-positive amounts get the sentinel, amounts beyond the last
// finite bound get the catch-all.
func Classify(amount int64) string {
	if amount <= 0 {
		return Sentinel
	}
	for _, b := range buckets {
		if amount < b.bound {
			return b.label
		}
	}
	return catchAll
}
