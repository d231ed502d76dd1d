package certificates

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreateMarshalsStandards(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	expiration := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	cert := Certificate{
		ID:                "cert-1",
		OrganizationID:    "org-1",
		HolderName:        "Ana Lopez",
		CertificationType: "Fall Protection",
		Status:            StatusActive,
		ExpirationDate:    &expiration,
		Standards:         []string{"OSHA 1926.501"},
		CreatedAt:         time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO certificates").
		WithArgs(
			cert.ID,
			cert.OrganizationID,
			cert.HolderName,
			cert.CertificationType,
			nil, // issue_date
			sqlmock.AnyArg(),
			cert.Status,
			[]byte(`["OSHA 1926.501"]`),
			cert.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), cert); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoListByOrganization(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	createdAt := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	expiration := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{
		"id", "organization_id", "holder_name", "certification_type",
		"issue_date", "expiration_date", "status", "standards", "created_at",
	}).
		AddRow("cert-1", "org-1", "Ana Lopez", "Fall Protection", nil, expiration, StatusActive, []byte(`["OSHA 1926.501"]`), createdAt).
		AddRow("cert-2", "org-1", "Ben Ortiz", "First Aid", nil, nil, StatusActive, []byte(`[]`), createdAt)

	mock.ExpectQuery("SELECT id, organization_id, holder_name, certification_type").
		WithArgs("org-1").
		WillReturnRows(rows)

	certs, err := repo.ListByOrganization(context.Background(), "org-1")
	if err != nil {
		t.Fatalf("ListByOrganization: %v", err)
	}
	if len(certs) != 2 {
		t.Fatalf("expected 2 certificates, got %d", len(certs))
	}
	if certs[0].ExpirationDate == nil || !certs[0].ExpirationDate.Equal(expiration) {
		t.Fatalf("unexpected expiration date: %v", certs[0].ExpirationDate)
	}
	if len(certs[0].Standards) != 1 || certs[0].Standards[0] != "OSHA 1926.501" {
		t.Fatalf("unexpected standards: %v", certs[0].Standards)
	}
	if certs[1].ExpirationDate != nil {
		t.Fatalf("expected nil expiration for NULL column, got %v", certs[1].ExpirationDate)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
