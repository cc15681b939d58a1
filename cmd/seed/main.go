package main

import (
	"context"
	"log"

	"bucky/internal/config"
	"bucky/internal/db"
	"bucky/internal/errors"
	"bucky/internal/repository"
	"bucky/internal/service"
)

// Demo fixtures seeded for local development.
var fixtures = []struct {
	name  string
	tasks []string
}{
	{"buck", []string{"get to mars", "talk to a whale"}},
	{"travel", []string{"see the northern lights", "walk the great wall"}},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN, false)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	userRepo := repository.NewUserRepository(gormDB)
	bucketListRepo := repository.NewBucketListRepository(gormDB)
	taskRepo := repository.NewTaskRepository(gormDB)

	users := service.NewUserService(userRepo)
	bucketLists := service.NewBucketListService(bucketListRepo, cfg.BucketsPerPage)
	tasks := service.NewTaskService(bucketListRepo, taskRepo)

	ctx := context.Background()

	user, err := users.Register(ctx, "arny", "passy")
	if err == errors.ErrUserExists {
		log.Println("Demo user already present, nothing to do")
		return
	}
	if err != nil {
		log.Fatalf("Failed to register demo user: %v", err)
	}

	seeded := 0
	for _, fixture := range fixtures {
		bucketList, err := bucketLists.Create(ctx, user.ID, fixture.name)
		if err != nil {
			log.Fatalf("Failed to create bucket list %q: %v", fixture.name, err)
		}
		for _, description := range fixture.tasks {
			if _, err := tasks.Create(ctx, user.ID, bucketList.ID, description); err != nil {
				log.Fatalf("Failed to create task %q: %v", description, err)
			}
			seeded++
		}
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Demo user: %s", user.Username)
	log.Printf("  - Bucket lists created: %d", len(fixtures))
	log.Printf("  - Tasks created: %d", seeded)
}
