package repository

import "strconv"

// Prices are stored as DynamoDB number attributes; FormatFloat with -1
// precision keeps the shortest exact representation.
func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
