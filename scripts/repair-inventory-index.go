package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"
)

// Minimal shape check for inventory documents
type inventoryDoc struct {
	Character string `json:"character"`
	ItemID    int64  `json:"item_id"`
	Count     int64  `json:"count"`
}

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Auditing the inventory index...")

	indexed, err := client.SMembers(ctx, "inventory:index").Result()
	if err != nil {
		log.Fatal("Failed to read inventory index:", err)
	}

	// Dangling index members point at documents that no longer exist.
	var dangling []string
	for _, docID := range indexed {
		exists, err := client.Exists(ctx, "inventory:"+docID).Result()
		if err != nil {
			fmt.Printf("Error checking %s: %v\n", docID, err)
			continue
		}
		if exists == 0 {
			fmt.Printf("✗ Index member with no document: %s\n", docID)
			dangling = append(dangling, docID)
		}
	}

	// Orphaned documents exist but are missing from the index, so the
	// list endpoint never sees them and replacement never cleans them.
	indexedSet := make(map[string]struct{}, len(indexed))
	for _, docID := range indexed {
		indexedSet[docID] = struct{}{}
	}

	var orphaned []string
	var checkedCount int
	iter := client.Scan(ctx, 0, "inventory:*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		if key == "inventory:index" {
			continue
		}
		checkedCount++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var doc inventoryDoc
		if err := json.Unmarshal([]byte(data), &doc); err != nil {
			fmt.Printf("✗ Corrupted JSON in %s\n", key)
			orphaned = append(orphaned, key)
			continue
		}

		docID := strings.TrimPrefix(key, "inventory:")
		if _, ok := indexedSet[docID]; !ok {
			fmt.Printf("✗ Document missing from index: %s\n", key)
			orphaned = append(orphaned, key)
		}
	}
	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d documents, found %d dangling index members and %d orphans\n",
		checkedCount, len(dangling), len(orphaned))

	if len(dangling) == 0 && len(orphaned) == 0 {
		fmt.Println("Index is consistent!")
		return
	}

	fmt.Print("\nDo you want to REPAIR these entries? (yes/no): ")
	var response string
	fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, docID := range dangling {
		if err := client.SRem(ctx, "inventory:index", docID).Err(); err != nil {
			fmt.Printf("Failed to remove %s from index: %v\n", docID, err)
		} else {
			fmt.Printf("Removed dangling index member %s\n", docID)
		}
	}
	for _, key := range orphaned {
		if err := client.Del(ctx, key).Err(); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
		} else {
			fmt.Printf("Deleted orphaned document %s\n", key)
		}
	}
	fmt.Println("\nRepair complete!")
}
