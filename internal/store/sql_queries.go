package store

import (
	"time"

	"github.com/MKhiriev/go-store-locator/models"
	sq "github.com/Masterminds/squirrel"
)

var (
	accountColumns = []string{
		"u.id", "u.email", "u.name", "u.created_at", "u.updated_at",
		"c.id", "c.algorithm", "c.salt", "c.digest", "c.created_at", "c.updated_at",
	}

	sessionColumns = []string{
		"id", "user_id", "token_hash", "ip_address", "user_agent",
		"issued_at", "expires_at", "updated_at",
	}

	locationColumns = []string{
		"l.id", "l.store_number", "l.store_name", "l.address", "l.city", "l.state",
		"l.zip_code", "l.phone_number", "l.latitude", "l.longitude", "l.google_place_id",
		"l.district_id", "l.store_manager_id", "l.district_manager_id", "l.is_active",
		"l.created_at", "l.updated_at",
		"d.id", "d.district_number", "d.district_name",
		"m.id", "m.first_name", "m.last_name", "m.email", "m.phone_number", "m.role",
	}

	storeHoursColumns = []string{
		"id", "location_id", "day_of_week", "open_time", "close_time", "is_closed",
	}
)

// ── accounts ──────────────────────────────────────────────────────────────────

func buildInsertUserQuery(sb sq.StatementBuilderType, account models.Account) (string, []any, error) {
	return sb.Insert("users").
		Columns("id", "email", "name", "created_at", "updated_at").
		Values(account.ID, account.Email, account.DisplayName, account.CreatedAt, account.UpdatedAt).
		ToSql()
}

func buildInsertCredentialQuery(sb sq.StatementBuilderType, credential models.Credential) (string, []any, error) {
	return sb.Insert("credentials").
		Columns("id", "user_id", "provider", "algorithm", "salt", "digest", "created_at", "updated_at").
		Values(credential.ID, credential.AccountID, models.CredentialProvider, credential.Algorithm,
			credential.Salt, credential.Digest, credential.CreatedAt, credential.UpdatedAt).
		ToSql()
}

func buildUpdateCredentialQuery(sb sq.StatementBuilderType, credential models.Credential) (string, []any, error) {
	return sb.Update("credentials").
		Set("algorithm", credential.Algorithm).
		Set("salt", credential.Salt).
		Set("digest", credential.Digest).
		Set("updated_at", credential.UpdatedAt).
		Where(sq.Eq{"user_id": credential.AccountID}).
		ToSql()
}

// buildFindAccountQuery selects an account joined with its credential,
// filtered by a single users column.
func buildFindAccountQuery(sb sq.StatementBuilderType, column string, value any) (string, []any, error) {
	return sb.Select(accountColumns...).
		From("users u").
		LeftJoin("credentials c ON c.user_id = u.id").
		Where(sq.Eq{"u." + column: value}).
		Limit(1).
		ToSql()
}

// ── sessions ──────────────────────────────────────────────────────────────────

func buildInsertSessionQuery(sb sq.StatementBuilderType, session models.Session) (string, []any, error) {
	return sb.Insert("sessions").
		Columns(sessionColumns...).
		Values(session.ID, session.AccountID, session.TokenHash, session.IPAddress, session.UserAgent,
			session.IssuedAt, session.ExpiresAt, session.UpdatedAt).
		ToSql()
}

func buildFindSessionQuery(sb sq.StatementBuilderType, tokenHash string) (string, []any, error) {
	return sb.Select(sessionColumns...).
		From("sessions").
		Where(sq.Eq{"token_hash": tokenHash}).
		Limit(1).
		ToSql()
}

func buildExtendSessionQuery(sb sq.StatementBuilderType, tokenHash string, expiresAt, updatedAt time.Time) (string, []any, error) {
	return sb.Update("sessions").
		Set("expires_at", expiresAt).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"token_hash": tokenHash}).
		ToSql()
}

func buildDeleteSessionQuery(sb sq.StatementBuilderType, tokenHash string) (string, []any, error) {
	return sb.Delete("sessions").Where(sq.Eq{"token_hash": tokenHash}).ToSql()
}

func buildDeleteAccountSessionsQuery(sb sq.StatementBuilderType, accountID string) (string, []any, error) {
	return sb.Delete("sessions").Where(sq.Eq{"user_id": accountID}).ToSql()
}

func buildDeleteExpiredSessionsQuery(sb sq.StatementBuilderType, now time.Time) (string, []any, error) {
	return sb.Delete("sessions").Where(sq.LtOrEq{"expires_at": now}).ToSql()
}

// ── locations ─────────────────────────────────────────────────────────────────

func selectLocations(sb sq.StatementBuilderType) sq.SelectBuilder {
	return sb.Select(locationColumns...).
		From("locations l").
		LeftJoin("districts d ON d.id = l.district_id").
		LeftJoin("managers m ON m.id = l.store_manager_id")
}

func buildListLocationsQuery(sb sq.StatementBuilderType, filter models.LocationFilter) (string, []any, error) {
	query := selectLocations(sb)

	if filter.Active != nil {
		query = query.Where(sq.Eq{"l.is_active": *filter.Active})
	}
	if filter.DistrictID != nil {
		query = query.Where(sq.Eq{"l.district_id": *filter.DistrictID})
	}
	if filter.State != nil {
		query = query.Where(sq.Eq{"l.state": *filter.State})
	}

	return query.OrderBy("l.created_at DESC", "l.store_number").ToSql()
}

func buildGetLocationQuery(sb sq.StatementBuilderType, id string) (string, []any, error) {
	return selectLocations(sb).Where(sq.Eq{"l.id": id}).Limit(1).ToSql()
}

func buildListStoreHoursQuery(sb sq.StatementBuilderType, locationID string) (string, []any, error) {
	return sb.Select(storeHoursColumns...).
		From("store_hours").
		Where(sq.Eq{"location_id": locationID}).
		OrderBy("day_of_week").
		ToSql()
}

func buildInsertLocationQuery(sb sq.StatementBuilderType, l models.Location) (string, []any, error) {
	return sb.Insert("locations").
		Columns("id", "store_number", "store_name", "address", "city", "state", "zip_code",
			"phone_number", "latitude", "longitude", "google_place_id", "district_id",
			"store_manager_id", "district_manager_id", "is_active", "created_at", "updated_at").
		Values(l.ID, l.StoreNumber, l.StoreName, l.Address, l.City, l.State, l.ZipCode,
			l.PhoneNumber, l.Latitude, l.Longitude, l.GooglePlaceID, l.DistrictID,
			l.StoreManagerID, l.DistrictManagerID, l.IsActive, l.CreatedAt, l.UpdatedAt).
		ToSql()
}

func buildInsertStoreHoursQuery(sb sq.StatementBuilderType, hours []models.StoreHours) (string, []any, error) {
	query := sb.Insert("store_hours").Columns(storeHoursColumns...)
	for _, h := range hours {
		query = query.Values(h.ID, h.LocationID, h.DayOfWeek, h.OpenTime, h.CloseTime, h.IsClosed)
	}
	return query.ToSql()
}

func buildDeleteStoreHoursQuery(sb sq.StatementBuilderType, locationID string) (string, []any, error) {
	return sb.Delete("store_hours").Where(sq.Eq{"location_id": locationID}).ToSql()
}

// buildUpdateLocationQuery sets only the non-nil fields of update.
func buildUpdateLocationQuery(sb sq.StatementBuilderType, update models.LocationUpdate, updatedAt time.Time) (string, []any, error) {
	query := sb.Update("locations").Set("updated_at", updatedAt)

	setString := func(column string, v *string) {
		if v != nil {
			query = query.Set(column, *v)
		}
	}
	// empty strings clear optional columns
	setNullable := func(column string, v *string) {
		if v == nil {
			return
		}
		if *v == "" {
			query = query.Set(column, nil)
			return
		}
		query = query.Set(column, *v)
	}
	setFloat := func(column string, v *float64) {
		if v != nil {
			query = query.Set(column, *v)
		}
	}

	setString("store_number", update.StoreNumber)
	setString("store_name", update.StoreName)
	setString("address", update.Address)
	setString("city", update.City)
	setString("state", update.State)
	setString("zip_code", update.ZipCode)
	setNullable("phone_number", update.PhoneNumber)
	setFloat("latitude", update.Latitude)
	setFloat("longitude", update.Longitude)
	setNullable("google_place_id", update.GooglePlaceID)
	setNullable("district_id", update.DistrictID)
	setNullable("store_manager_id", update.StoreManagerID)
	setNullable("district_manager_id", update.DistrictManagerID)
	if update.IsActive != nil {
		query = query.Set("is_active", *update.IsActive)
	}

	return query.Where(sq.Eq{"id": update.ID}).ToSql()
}

func buildDeactivateLocationQuery(sb sq.StatementBuilderType, id string, updatedAt time.Time) (string, []any, error) {
	return sb.Update("locations").
		Set("is_active", false).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// ── districts and managers ────────────────────────────────────────────────────

func buildInsertDistrictQuery(sb sq.StatementBuilderType, d models.District, at time.Time) (string, []any, error) {
	return sb.Insert("districts").
		Columns("id", "district_number", "district_name", "created_at", "updated_at").
		Values(d.ID, d.DistrictNumber, d.DistrictName, at, at).
		Suffix("ON CONFLICT DO NOTHING").
		ToSql()
}

func buildInsertManagerQuery(sb sq.StatementBuilderType, m models.Manager, at time.Time) (string, []any, error) {
	return sb.Insert("managers").
		Columns("id", "first_name", "last_name", "email", "phone_number", "role", "created_at", "updated_at").
		Values(m.ID, m.FirstName, m.LastName, m.Email, m.PhoneNumber, m.Role, at, at).
		Suffix("ON CONFLICT DO NOTHING").
		ToSql()
}
