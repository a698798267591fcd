package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"groupfund-backend/internal/domain"
	"groupfund-backend/internal/logger"
	"groupfund-backend/internal/repository"
)

type memberRepository struct {
	q querier
}

func NewMemberRepository(db *sql.DB) repository.MemberRepository {
	return &memberRepository{q: db}
}

const memberColumns = `id, name, role, COALESCE(email, ''), COALESCE(password_hash, ''), COALESCE(identifier, ''), lifetime_contribution, created_on`

func (r *memberRepository) Create(ctx context.Context, member *domain.Member) error {
	logger.EnterMethod("memberRepository.Create", "memberID", member.ID, "role", member.Role)

	query := `
		INSERT INTO members (id, name, role, email, password_hash, identifier, lifetime_contribution, created_on)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), $7, $8)
	`
	now := time.Now()
	_, err := r.q.ExecContext(ctx, query,
		member.ID, member.Name, member.Role, member.Email, member.PasswordHash,
		member.Identifier, member.LifetimeContribution, now,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			logger.ExitMethodWithError("memberRepository.Create", err, "memberID", member.ID)
			return domain.Conflictf("member identity %q already taken", member.ID)
		}
		logger.ExitMethodWithError("memberRepository.Create", err, "memberID", member.ID)
		return err
	}
	member.CreatedOn = now

	logger.ExitMethod("memberRepository.Create", "memberID", member.ID)
	return nil
}

func (r *memberRepository) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE id = $1`
	return r.scanOne(ctx, query, id, "member", id)
}

func (r *memberRepository) GetByEmail(ctx context.Context, email string) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE email = $1`
	return r.scanOne(ctx, query, email, "member", email)
}

func (r *memberRepository) GetByIdentifier(ctx context.Context, identifier string) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE identifier = $1`
	return r.scanOne(ctx, query, identifier, "member", identifier)
}

func (r *memberRepository) scanOne(ctx context.Context, query, arg, kind, ref string) (*domain.Member, error) {
	member := &domain.Member{}
	err := r.q.QueryRowContext(ctx, query, arg).Scan(
		&member.ID, &member.Name, &member.Role, &member.Email, &member.PasswordHash,
		&member.Identifier, &member.LifetimeContribution, &member.CreatedOn,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound(kind, ref)
	}
	if err != nil {
		return nil, err
	}
	return member, nil
}

func (r *memberRepository) List(ctx context.Context) ([]domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members ORDER BY name`
	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []domain.Member
	for rows.Next() {
		var m domain.Member
		if err := rows.Scan(
			&m.ID, &m.Name, &m.Role, &m.Email, &m.PasswordHash,
			&m.Identifier, &m.LifetimeContribution, &m.CreatedOn,
		); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *memberRepository) Update(ctx context.Context, member *domain.Member) error {
	query := `
		UPDATE members SET name = $1, role = $2, email = NULLIF($3, ''),
		       password_hash = NULLIF($4, ''), lifetime_contribution = $5
		WHERE id = $6
	`
	result, err := r.q.ExecContext(ctx, query,
		member.Name, member.Role, member.Email, member.PasswordHash,
		member.LifetimeContribution, member.ID,
	)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.NotFound("member", member.ID)
	}
	return nil
}

func (r *memberRepository) AddToContribution(ctx context.Context, id string, delta float64) error {
	query := `UPDATE members SET lifetime_contribution = lifetime_contribution + $1 WHERE id = $2`
	result, err := r.q.ExecContext(ctx, query, delta, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.NotFound("member", id)
	}
	return nil
}
