package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-crud-api/models"
)

var (
	usersTable = models.User{}.TableName()
	itemsTable = models.Item{}.TableName()

	userColumns = []string{
		"id", "username", "email", "password_hash",
		"is_active", "is_admin", "created_at", "updated_at",
	}

	itemColumns = []string{
		"id", "name", "description", "user_id", "created_at", "updated_at",
	}

	currentTimestamp = sq.Expr("CURRENT_TIMESTAMP")
)

func selectUsers() sq.SelectBuilder {
	return placeholder.Select(userColumns...).From(usersTable).OrderBy("id")
}

func selectUserBy(column string, value any) sq.SelectBuilder {
	return selectUsers().Where(sq.Eq{column: value}).Limit(1)
}

func insertUser(user models.NewUser, passwordHash string) sq.InsertBuilder {
	return placeholder.Insert(usersTable).
		Columns("username", "email", "password_hash", "is_active", "is_admin").
		Values(user.Username, user.Email, passwordHash, user.IsActive, user.IsAdmin)
}

func updateUser(id int64, set map[string]any) sq.UpdateBuilder {
	return placeholder.Update(usersTable).
		SetMap(set).
		Set("updated_at", currentTimestamp).
		Where(sq.Eq{"id": id})
}

func deleteUser(id int64) sq.DeleteBuilder {
	return placeholder.Delete(usersTable).Where(sq.Eq{"id": id})
}

func selectItems() sq.SelectBuilder {
	return placeholder.Select(itemColumns...).From(itemsTable).OrderBy("id")
}

func selectItemByID(id int64) sq.SelectBuilder {
	return selectItems().Where(sq.Eq{"id": id}).Limit(1)
}

func selectItemsByUserID(userID int64) sq.SelectBuilder {
	return selectItems().Where(sq.Eq{"user_id": userID})
}

func insertItem(item models.NewItem) sq.InsertBuilder {
	return placeholder.Insert(itemsTable).
		Columns("name", "description", "user_id").
		Values(item.Name, item.Description, item.UserID)
}

func updateItem(id int64, set map[string]any) sq.UpdateBuilder {
	return placeholder.Update(itemsTable).
		SetMap(set).
		Set("updated_at", currentTimestamp).
		Where(sq.Eq{"id": id})
}

func deleteItem(id int64) sq.DeleteBuilder {
	return placeholder.Delete(itemsTable).Where(sq.Eq{"id": id})
}
