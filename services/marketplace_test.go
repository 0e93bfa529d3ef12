package services

import (
	"fmt"
	"math/rand"
	"testing"
	"vendora_server/structs/tables"

	"github.com/stretchr/testify/assert"

	"github.com/google/uuid"
)

func poolWithStores(counts map[string]int) []tables.Item {
	pool := []tables.Item{}
	for name, n := range counts {
		storeID := uuid.NewSHA1(uuid.NameSpaceOID, []byte(name))
		for i := 0; i < n; i++ {
			pool = append(pool, tables.Item{
				Id:      uuid.New(),
				StoreId: storeID,
				Name:    fmt.Sprintf("%s item %d", name, i),
			})
		}
	}
	return pool
}

func TestFairMixSampleCapsProlificStore(t *testing.T) {
	pool := poolWithStores(map[string]int{
		"flooder": 50,
		"small-a": 2,
		"small-b": 1,
	})

	for seed := int64(0); seed < 20; seed++ {
		mixed := FairMixSample(pool, 4, rand.New(rand.NewSource(seed)))

		perStore := map[uuid.UUID]int{}
		for _, item := range mixed {
			perStore[item.StoreId]++
		}

		for storeID, n := range perStore {
			assert.LessOrEqual(t, n, 4, "seed %d store %s", seed, storeID)
		}

		// 4 from the flooder plus everything the small stores have
		assert.Len(t, mixed, 7, "seed %d", seed)
	}
}

func TestFairMixSampleKeepsEveryItemUnderCap(t *testing.T) {
	pool := poolWithStores(map[string]int{
		"one": 3,
		"two": 4,
	})

	mixed := FairMixSample(pool, 4, rand.New(rand.NewSource(1)))

	assert.Len(t, mixed, 7)

	seen := map[uuid.UUID]bool{}
	for _, item := range mixed {
		assert.False(t, seen[item.Id], "item repeated in mix")
		seen[item.Id] = true
	}
}

func TestFairMixSampleEmptyPool(t *testing.T) {
	mixed := FairMixSample(nil, 4, rand.New(rand.NewSource(1)))
	assert.Empty(t, mixed)
}

func TestFairMixSampleZeroCap(t *testing.T) {
	pool := poolWithStores(map[string]int{"one": 3})
	mixed := FairMixSample(pool, 0, rand.New(rand.NewSource(1)))
	assert.Empty(t, mixed)
}

func TestFairMixSampleMixesStores(t *testing.T) {
	// With two large stores the output should not be grouped by store for
	// every seed; one interleaving anywhere proves the final shuffle runs
	pool := poolWithStores(map[string]int{
		"one": 4,
		"two": 4,
	})

	interleaved := false
	for seed := int64(0); seed < 50 && !interleaved; seed++ {
		mixed := FairMixSample(pool, 4, rand.New(rand.NewSource(seed)))

		switches := 0
		for i := 1; i < len(mixed); i++ {
			if mixed[i].StoreId != mixed[i-1].StoreId {
				switches++
			}
		}
		if switches > 1 {
			interleaved = true
		}
	}

	assert.True(t, interleaved, "stores never interleaved across seeds")
}
