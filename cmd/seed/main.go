package main

import (
	"context"
	"fmt"
	"log"

	"github.com/Terracotich/apitest/internal/config"
	"github.com/Terracotich/apitest/internal/db"
	"github.com/Terracotich/apitest/internal/model"
	"github.com/Terracotich/apitest/internal/repository"
)

func main() {
	log.Println("Starting seed script...")

	// Load configuration
	cfg := config.Load()

	// Connect to database
	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(
		&model.Role{},
		&model.Brand{},
		&model.Category{},
		&model.User{},
		&model.Product{},
		&model.Order{},
		&model.Payment{},
		&model.Review{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()

	roleRepo := repository.NewRoleRepository(gormDB)
	brandRepo := repository.NewBrandRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)

	roles, err := seedRoles(ctx, roleRepo)
	if err != nil {
		log.Fatalf("Failed to seed roles: %v", err)
	}

	brands, err := seedBrands(ctx, brandRepo)
	if err != nil {
		log.Fatalf("Failed to seed brands: %v", err)
	}

	categories, err := seedCategories(ctx, categoryRepo)
	if err != nil {
		log.Fatalf("Failed to seed categories: %v", err)
	}

	if err := seedDemoUser(ctx, userRepo, roles["CLIENT"]); err != nil {
		log.Fatalf("Failed to seed demo user: %v", err)
	}

	created, skipped, err := seedProducts(ctx, productRepo, brands, categories)
	if err != nil {
		log.Fatalf("Failed to seed products: %v", err)
	}

	log.Println("Seed completed successfully!")
	log.Printf("  - Products created: %d", created)
	log.Printf("  - Products already present: %d", skipped)
}

// seedRoles inserts the baseline roles and returns their ids by title.
func seedRoles(ctx context.Context, repo repository.RoleRepository) (map[string]int64, error) {
	titles := []string{"ADMIN", "CLIENT", "MANAGER"}
	ids := make(map[string]int64, len(titles))

	for _, title := range titles {
		exists, err := repo.ExistsByTitle(ctx, title)
		if err != nil {
			return nil, fmt.Errorf("error checking role %s: %w", title, err)
		}
		role := model.Role{CharacterTitle: title}
		if !exists {
			if err := repo.Create(ctx, &role); err != nil {
				return nil, fmt.Errorf("error creating role %s: %w", title, err)
			}
			log.Printf("Created role: %s", title)
		}
		if role.ID == 0 {
			id, err := findRoleID(ctx, repo, title)
			if err != nil {
				return nil, err
			}
			role.ID = id
		}
		ids[title] = role.ID
	}

	return ids, nil
}

func findRoleID(ctx context.Context, repo repository.RoleRepository, title string) (int64, error) {
	all, err := repo.FindAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("error listing roles: %w", err)
	}
	for _, r := range all {
		if r.CharacterTitle == title {
			return r.ID, nil
		}
	}
	return 0, fmt.Errorf("role %s not found after seeding", title)
}

func seedBrands(ctx context.Context, repo repository.BrandRepository) (map[string]int64, error) {
	titles := []string{"Samsung", "Apple", "Xiaomi"}
	ids := make(map[string]int64, len(titles))

	for _, title := range titles {
		exists, err := repo.ExistsByTitle(ctx, title)
		if err != nil {
			return nil, fmt.Errorf("error checking brand %s: %w", title, err)
		}
		if !exists {
			brand := model.Brand{BrandTitle: title}
			if err := repo.Create(ctx, &brand); err != nil {
				return nil, fmt.Errorf("error creating brand %s: %w", title, err)
			}
			log.Printf("Created brand: %s", title)
		}
	}

	all, err := repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing brands: %w", err)
	}
	for _, b := range all {
		ids[b.BrandTitle] = b.ID
	}
	return ids, nil
}

func seedCategories(ctx context.Context, repo repository.CategoryRepository) (map[string]int64, error) {
	titles := []string{"Smartphones", "Laptops", "Accessories"}
	ids := make(map[string]int64, len(titles))

	for _, title := range titles {
		exists, err := repo.ExistsByTitle(ctx, title)
		if err != nil {
			return nil, fmt.Errorf("error checking category %s: %w", title, err)
		}
		if !exists {
			category := model.Category{CategoryTitle: title}
			if err := repo.Create(ctx, &category); err != nil {
				return nil, fmt.Errorf("error creating category %s: %w", title, err)
			}
			log.Printf("Created category: %s", title)
		}
	}

	all, err := repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing categories: %w", err)
	}
	for _, c := range all {
		ids[c.CategoryTitle] = c.ID
	}
	return ids, nil
}

func seedDemoUser(ctx context.Context, repo repository.UserRepository, roleID int64) error {
	const phone = "+79990000001"

	exists, err := repo.ExistsByPhoneNumber(ctx, phone)
	if err != nil {
		return fmt.Errorf("error checking demo user: %w", err)
	}
	if exists {
		return nil
	}

	user := model.User{
		FirstName:      "Demo",
		SurName:        "Client",
		PhoneNumber:    phone,
		ClientLogin:    "demo",
		ClientPassword: "demo-pass",
		RoleID:         int(roleID),
	}
	if err := repo.Create(ctx, &user); err != nil {
		return fmt.Errorf("error creating demo user: %w", err)
	}
	log.Printf("Created demo user: %s", user.ClientLogin)
	return nil
}

func seedProducts(ctx context.Context, repo repository.ProductRepository, brands, categories map[string]int64) (created int, skipped int, err error) {
	items := []model.Product{
		{ProductTitle: "Galaxy S24", Price: 79990, Quantity: 25, BrandID: brands["Samsung"], CategoryID: categories["Smartphones"]},
		{ProductTitle: "iPhone 15", Price: 89990, Quantity: 18, BrandID: brands["Apple"], CategoryID: categories["Smartphones"]},
		{ProductTitle: "Redmi Note 13", Price: 24990, Quantity: 40, BrandID: brands["Xiaomi"], CategoryID: categories["Smartphones"]},
		{ProductTitle: "MacBook Air", Price: 129990, Quantity: 7, BrandID: brands["Apple"], CategoryID: categories["Laptops"]},
	}

	for i := range items {
		exists, err := repo.ExistsByTitle(ctx, items[i].ProductTitle)
		if err != nil {
			return created, skipped, fmt.Errorf("error checking product %s: %w", items[i].ProductTitle, err)
		}
		if exists {
			skipped++
			continue
		}
		if err := repo.Create(ctx, &items[i]); err != nil {
			return created, skipped, fmt.Errorf("error creating product %s: %w", items[i].ProductTitle, err)
		}
		created++
	}

	return created, skipped, nil
}
