package inspect

// BeforeEarliestLabel is returned for identifiers at or below the first bucket.
const BeforeEarliestLabel = "before 2015"

// ageBuckets must stay sorted by ascending threshold.
var ageBuckets = []struct {
	threshold int64
	year      string
}{
	{100_000_000, "2015"},
	{500_000_000, "2017"},
	{1_000_000_000, "2019"},
	{2_000_000_000, "2021"},
	{5_000_000_000, "2022"},
	{6_000_000_000, "2023"},
	{7_000_000_000, "2024"},
}

// AgeEstimate is an approximate account creation bucket.
// Bucket 0 is the "before earliest" bucket; larger buckets are later years.
type AgeEstimate struct {
	Bucket int
	Label  string
}

// Earliest reports whether the estimate falls before the first known bucket.
func (a AgeEstimate) Earliest() bool {
	return a.Bucket == 0
}

func (a AgeEstimate) String() string {
	return a.Label
}

// EstimateAge maps an account identifier to the latest bucket whose threshold
// it strictly exceeds.
func EstimateAge(id int64) AgeEstimate {
	est := AgeEstimate{Label: BeforeEarliestLabel}
	for i, b := range ageBuckets {
		if id <= b.threshold {
			break
		}
		est = AgeEstimate{Bucket: i + 1, Label: b.year}
	}
	return est
}
