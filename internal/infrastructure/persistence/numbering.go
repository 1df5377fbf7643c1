package persistence

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

// nextSequencedNumber allocates the next PREFIX-YYYYMMDD-NNN document
// number for the given date by scanning the highest existing suffix in
// the column. It must run on a transaction-scoped DB handle so two
// concurrent allocations for the same day serialize on the insert's
// unique index rather than both reading the same maximum.
func nextSequencedNumber(db *gorm.DB, table, column, prefix string, date time.Time) (string, error) {
	dayPrefix := fmt.Sprintf("%s-%s-", prefix, date.Format("20060102"))

	var last string
	err := db.Table(table).
		Select(column).
		Where(column+" LIKE ?", dayPrefix+"%").
		Order(column + " DESC").
		Limit(1).
		Scan(&last).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	seq := 1
	if last != "" {
		suffix := strings.TrimPrefix(last, dayPrefix)
		n, err := strconv.Atoi(suffix)
		if err != nil {
			return "", fmt.Errorf("malformed document number %q in %s.%s", last, table, column)
		}
		seq = n + 1
	}

	return fmt.Sprintf("%s%03d", dayPrefix, seq), nil
}
