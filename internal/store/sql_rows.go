package store

import (
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-crud-api/models"
)

// sqliteTimeFormats are the textual timestamp layouts SQLite produces or
// accepts, tried in order.
var sqliteTimeFormats = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
	time.RFC3339Nano,
}

func rowToUser(row Row) (models.User, error) {
	var (
		user models.User
		err  error
	)

	if user.ID, err = int64Column(row, "id"); err != nil {
		return models.User{}, err
	}
	if user.Username, err = stringColumn(row, "username"); err != nil {
		return models.User{}, err
	}
	if user.Email, err = stringColumn(row, "email"); err != nil {
		return models.User{}, err
	}
	if user.PasswordHash, err = stringColumn(row, "password_hash"); err != nil {
		return models.User{}, err
	}
	if user.IsActive, err = boolColumn(row, "is_active"); err != nil {
		return models.User{}, err
	}
	if user.IsAdmin, err = boolColumn(row, "is_admin"); err != nil {
		return models.User{}, err
	}
	if user.CreatedAt, err = timeColumn(row, "created_at"); err != nil {
		return models.User{}, err
	}
	if user.UpdatedAt, err = timeColumn(row, "updated_at"); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func rowToItem(row Row) (models.Item, error) {
	var (
		item models.Item
		err  error
	)

	if item.ID, err = int64Column(row, "id"); err != nil {
		return models.Item{}, err
	}
	if item.Name, err = stringColumn(row, "name"); err != nil {
		return models.Item{}, err
	}
	if item.Description, err = nullableStringColumn(row, "description"); err != nil {
		return models.Item{}, err
	}
	if item.UserID, err = int64Column(row, "user_id"); err != nil {
		return models.Item{}, err
	}
	if item.CreatedAt, err = timeColumn(row, "created_at"); err != nil {
		return models.Item{}, err
	}
	if item.UpdatedAt, err = timeColumn(row, "updated_at"); err != nil {
		return models.Item{}, err
	}

	return item, nil
}

func int64Column(row Row, column string) (int64, error) {
	switch v := row[column].(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case float64:
		return int64(v), nil
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, columnTypeError(column, v)
		}
		return n, nil
	default:
		return 0, columnTypeError(column, v)
	}
}

func stringColumn(row Row, column string) (string, error) {
	switch v := row[column].(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", columnTypeError(column, v)
	}
}

func nullableStringColumn(row Row, column string) (*string, error) {
	if row[column] == nil {
		return nil, nil
	}

	s, err := stringColumn(row, column)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func boolColumn(row Row, column string) (bool, error) {
	switch v := row[column].(type) {
	case bool:
		return v, nil
	case int64:
		return v != 0, nil
	case int:
		return v != 0, nil
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, columnTypeError(column, v)
		}
		return b, nil
	default:
		return false, columnTypeError(column, v)
	}
}

func timeColumn(row Row, column string) (time.Time, error) {
	switch v := row[column].(type) {
	case time.Time:
		return v.UTC(), nil
	case string:
		return parseTime(column, v)
	case []byte:
		return parseTime(column, string(v))
	case int64:
		return time.Unix(v, 0).UTC(), nil
	default:
		return time.Time{}, columnTypeError(column, v)
	}
}

func parseTime(column, value string) (time.Time, error) {
	for _, layout := range sqliteTimeFormats {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, columnTypeError(column, value)
}

func columnTypeError(column string, value any) error {
	return fmt.Errorf("%w: column %q has value %v (%T)", ErrUnexpectedColumnType, column, value, value)
}
