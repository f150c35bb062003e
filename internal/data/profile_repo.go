package data

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/vitaltrack/vitaltrack/internal/data/cryptoutil"
	"github.com/vitaltrack/vitaltrack/internal/data/pgxutil"
	"github.com/vitaltrack/vitaltrack/internal/domain/model"
)

// ProfileRepo provides CRUD operations for health profiles with at-rest
// encryption of the PII columns (date of birth, conditions, medications,
// allergies). Values crossing the repo boundary are always plaintext.
type ProfileRepo struct {
	DB  *sql.DB
	Enc cryptoutil.Encryptor
}

// NewProfileRepo creates a new ProfileRepo.
func NewProfileRepo(db *sql.DB, enc cryptoutil.Encryptor) *ProfileRepo {
	return &ProfileRepo{DB: db, Enc: enc}
}

// profileRow mirrors the profiles table; PII columns hold ciphertext.
type profileRow struct {
	ID          string    `db:"id"`
	UserID      string    `db:"user_id"`
	DisplayName string    `db:"display_name"`
	DateOfBirth string    `db:"date_of_birth"`
	Sex         string    `db:"sex"`
	HeightCm    int       `db:"height_cm"`
	WeightKg    float64   `db:"weight_kg"`
	Conditions  string    `db:"conditions"`
	Medications string    `db:"medications"`
	Allergies   string    `db:"allergies"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

const profileColumns = `id, user_id, display_name, date_of_birth, sex, height_cm, weight_kg,
	conditions, medications, allergies, created_at, updated_at`

// GetByUserID fetches and decrypts a user's profile.
func (r *ProfileRepo) GetByUserID(ctx context.Context, userID string) (*model.Profile, error) {
	var row profileRow
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, qerr := conn.Query(ctx,
			`SELECT `+profileColumns+` FROM profiles WHERE user_id = $1`, userID)
		if qerr != nil {
			return qerr
		}
		defer rows.Close()
		row, qerr = pgx.CollectOneRow(rows, pgx.RowToStructByName[profileRow])
		return qerr
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return r.decrypt(row)
}

// Upsert creates or replaces the profile for userID, encrypting PII fields.
func (r *ProfileRepo) Upsert(ctx context.Context, userID string, req model.UpsertProfileRequest) (*model.Profile, error) {
	enc, err := r.encrypt(req)
	if err != nil {
		return nil, err
	}

	var row profileRow
	err = pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, qerr := conn.Query(ctx, `
			INSERT INTO profiles (id, user_id, display_name, date_of_birth, sex,
				height_cm, weight_kg, conditions, medications, allergies)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT (user_id) DO UPDATE SET
				display_name  = EXCLUDED.display_name,
				date_of_birth = EXCLUDED.date_of_birth,
				sex           = EXCLUDED.sex,
				height_cm     = EXCLUDED.height_cm,
				weight_kg     = EXCLUDED.weight_kg,
				conditions    = EXCLUDED.conditions,
				medications   = EXCLUDED.medications,
				allergies     = EXCLUDED.allergies,
				updated_at    = now()
			RETURNING `+profileColumns,
			uuid.New().String(), userID, req.DisplayName, enc.dateOfBirth, req.Sex,
			req.HeightCm, req.WeightKg, enc.conditions, enc.medications, enc.allergies)
		if qerr != nil {
			return qerr
		}
		defer rows.Close()
		row, qerr = pgx.CollectOneRow(rows, pgx.RowToStructByName[profileRow])
		return qerr
	})
	if err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}
	return r.decrypt(row)
}

// Delete removes a user's profile. Returns false when none existed.
func (r *ProfileRepo) Delete(ctx context.Context, userID string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM profiles WHERE user_id = $1`, userID)
	if err != nil {
		return false, fmt.Errorf("delete profile: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete profile rows affected: %w", err)
	}
	return n > 0, nil
}

type encryptedFields struct {
	dateOfBirth string
	conditions  string
	medications string
	allergies   string
}

func (r *ProfileRepo) encrypt(req model.UpsertProfileRequest) (encryptedFields, error) {
	var out encryptedFields
	var err error
	if out.dateOfBirth, err = r.encryptString(req.DateOfBirth); err != nil {
		return out, fmt.Errorf("encrypt date_of_birth: %w", err)
	}
	if out.conditions, err = r.encryptList(req.Conditions); err != nil {
		return out, fmt.Errorf("encrypt conditions: %w", err)
	}
	if out.medications, err = r.encryptList(req.Medications); err != nil {
		return out, fmt.Errorf("encrypt medications: %w", err)
	}
	if out.allergies, err = r.encryptList(req.Allergies); err != nil {
		return out, fmt.Errorf("encrypt allergies: %w", err)
	}
	return out, nil
}

func (r *ProfileRepo) encryptString(v string) (string, error) {
	if v == "" {
		return "", nil
	}
	return r.Enc.Encrypt([]byte(v))
}

func (r *ProfileRepo) encryptList(vs []string) (string, error) {
	if len(vs) == 0 {
		return "", nil
	}
	b, err := json.Marshal(vs)
	if err != nil {
		return "", err
	}
	return r.Enc.Encrypt(b)
}

func (r *ProfileRepo) decrypt(row profileRow) (*model.Profile, error) {
	p := model.Profile{
		ID:          row.ID,
		UserID:      row.UserID,
		DisplayName: row.DisplayName,
		Sex:         row.Sex,
		HeightCm:    row.HeightCm,
		WeightKg:    row.WeightKg,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
	var err error
	if p.DateOfBirth, err = r.decryptString(row.DateOfBirth); err != nil {
		return nil, fmt.Errorf("decrypt date_of_birth: %w", err)
	}
	if p.Conditions, err = r.decryptList(row.Conditions); err != nil {
		return nil, fmt.Errorf("decrypt conditions: %w", err)
	}
	if p.Medications, err = r.decryptList(row.Medications); err != nil {
		return nil, fmt.Errorf("decrypt medications: %w", err)
	}
	if p.Allergies, err = r.decryptList(row.Allergies); err != nil {
		return nil, fmt.Errorf("decrypt allergies: %w", err)
	}
	return &p, nil
}

func (r *ProfileRepo) decryptString(v string) (string, error) {
	if v == "" {
		return "", nil
	}
	pt, err := r.Enc.Decrypt(v)
	if err != nil {
		return "", err
	}
	return string(pt), nil
}

func (r *ProfileRepo) decryptList(v string) ([]string, error) {
	if v == "" {
		return nil, nil
	}
	pt, err := r.Enc.Decrypt(v)
	if err != nil {
		return nil, err
	}
	var out []string
	if uerr := json.Unmarshal(pt, &out); uerr != nil {
		return nil, uerr
	}
	return out, nil
}
