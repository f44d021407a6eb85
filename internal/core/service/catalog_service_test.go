package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/commutersec/admin-dashboard/internal/core/domain"
)

func newDriverCatalog(seed ...domain.Driver) (*CatalogService[domain.Driver, domain.DriverInput], *stubRepo[domain.Driver]) {
	repo := newStubRepo(seed...)
	svc := NewCatalogService[domain.Driver, domain.DriverInput]("drivers", repo, zerolog.Nop())
	svc.now = func() time.Time { return time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC) }
	return svc, repo
}

func TestCatalogService_Create_AssignsIDAndStamp(t *testing.T) {
	svc, repo := newDriverCatalog(domain.Driver{ID: 3, FirstName: "Pedro"})

	created, err := svc.Create(context.Background(), domain.DriverInput{
		FirstName:     "Ana",
		LastName:      "Reyes",
		LicenseStatus: domain.LicenseActive,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID != 4 {
		t.Fatalf("expected id 4, got %d", created.ID)
	}
	if created.RegisteredAt.Day() != 10 {
		t.Fatalf("expected registered_at to be stamped, got %v", created.RegisteredAt)
	}
	if len(repo.items) != 2 {
		t.Fatalf("expected 2 drivers, got %d", len(repo.items))
	}
}

func TestCatalogService_Update_KeepsIdentityAndRegistration(t *testing.T) {
	registered := domain.MustTime("2023-01-15T10:30:00")
	svc, _ := newDriverCatalog(domain.Driver{ID: 1, FirstName: "Juan", QRCode: "QR-1", RegisteredAt: registered})

	updated, err := svc.Update(context.Background(), 1, domain.DriverInput{FirstName: "Juanito"})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.ID != 1 || updated.FirstName != "Juanito" {
		t.Fatalf("unexpected driver: %+v", updated)
	}
	if !updated.RegisteredAt.Equal(registered.Time) {
		t.Fatalf("registered_at changed to %v", updated.RegisteredAt)
	}
	if updated.QRCode != "QR-1" {
		t.Fatalf("expected qr code to be kept, got %q", updated.QRCode)
	}
}

func TestCatalogService_Update_NotFound(t *testing.T) {
	svc, _ := newDriverCatalog()

	if _, err := svc.Update(context.Background(), 42, domain.DriverInput{}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCatalogService_Delete(t *testing.T) {
	svc, repo := newDriverCatalog(domain.Driver{ID: 1}, domain.Driver{ID: 2})

	if err := svc.Delete(context.Background(), 1); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, ok := repo.items[1]; ok {
		t.Fatalf("expected driver 1 to be removed")
	}
	if err := svc.Delete(context.Background(), 1); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestCatalogService_List_WrapsError(t *testing.T) {
	svc, repo := newDriverCatalog()
	repo.err = errors.New("boom")

	if _, err := svc.List(context.Background()); err == nil || err.Error() != "list drivers: boom" {
		t.Fatalf("unexpected error: %v", err)
	}
}
