package integration_test

const (
	TestRows         = 3
	TestCols         = 11
	TestMaxBlockSize = 10

	// 1-indexed seed reservations used by the seeded chart scenarios
	TestSeedCodes = "R1C4 R1C6 R2C3 R2C7 R3C9 R3C10"
)

// TestSeedSeats holds TestSeedCodes as zero-indexed row and column pairs.
var TestSeedSeats = [][2]int{{0, 3}, {0, 5}, {1, 2}, {1, 6}, {2, 8}, {2, 9}}
