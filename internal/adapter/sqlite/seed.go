package sqlite

import (
	"context"
	"fmt"

	"github.com/neomorfeo/leaseflow/internal/domain"
)

// Seed loads a small development dataset: one landlord, one tenant, and a
// spread of listings across cities, categories, and deal types. It is
// idempotent — a store that already has users is left untouched.
func Seed(ctx context.Context, store *Store) error {
	var count int
	if err := store.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return fmt.Errorf("counting users: %w", err)
	}
	if count > 0 {
		return nil
	}

	landlord, err := store.Users.Create(ctx, domain.User{Email: "landlord@test", Role: domain.RoleLandlord})
	if err != nil {
		return fmt.Errorf("seeding landlord: %w", err)
	}

	if _, err := store.Users.Create(ctx, domain.User{Email: "tenant@test", Role: domain.RoleTenant}); err != nil {
		return fmt.Errorf("seeding tenant: %w", err)
	}

	second, err := store.Users.Create(ctx, domain.User{Email: "landlord2@test", Role: domain.RoleLandlord})
	if err != nil {
		return fmt.Errorf("seeding second landlord: %w", err)
	}

	listings := []domain.Property{
		domain.NewProperty(landlord.ID, domain.Location{City: "Seoul", District: "Gangnam-gu"},
			domain.Price{Deposit: 50_000_000}, domain.TypeApartment, domain.DealJeonse),
		domain.NewProperty(landlord.ID, domain.Location{City: "Seoul", District: "Seocho-gu"},
			domain.Price{Deposit: 10_000_000, MonthlyRent: 800_000}, domain.TypeVilla, domain.DealMonthly),
		domain.NewProperty(landlord.ID, domain.Location{City: "Seoul", District: "Mapo-gu"},
			domain.Price{Deposit: 300_000_000}, domain.TypeOfficetel, domain.DealSale),
		domain.NewProperty(landlord.ID, domain.Location{City: "Gyeonggi-do", District: "Suwon-si"},
			domain.Price{Deposit: 30_000_000, MonthlyRent: 500_000}, domain.TypeApartment, domain.DealMonthly),
		domain.NewProperty(landlord.ID, domain.Location{City: "Seoul", District: "Jongno-gu"},
			domain.Price{Deposit: 15_000_000, MonthlyRent: 400_000}, domain.TypeOneRoom, domain.DealMonthly),
		domain.NewProperty(second.ID, domain.Location{City: "Incheon", District: "Yeonsu-gu"},
			domain.Price{Deposit: 25_000_000, MonthlyRent: 600_000}, domain.TypeApartment, domain.DealMonthly),
		domain.NewProperty(second.ID, domain.Location{City: "Busan", District: "Haeundae-gu"},
			domain.Price{Deposit: 200_000_000}, domain.TypeVilla, domain.DealSale),
		domain.NewProperty(second.ID, domain.Location{City: "Daegu", District: "Jung-gu"},
			domain.Price{Deposit: 35_000_000}, domain.TypeOneRoom, domain.DealJeonse),
	}

	for _, p := range listings {
		if _, err := store.Properties.Create(ctx, p); err != nil {
			return fmt.Errorf("seeding property: %w", err)
		}
	}

	return nil
}
