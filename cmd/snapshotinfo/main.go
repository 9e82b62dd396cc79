// Command snapshotinfo inspects a snapshot store: it lists the stored
// snapshots or prints a biome histogram for one of them.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/chunkworks/biomegen/gen/biome"
	"github.com/chunkworks/biomegen/snapshot"
)

func main() {
	dir := flag.String("dir", "snapshots", "snapshot store directory")
	id := flag.String("id", "", "snapshot id to summarise; lists all snapshots when empty")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	store, err := snapshot.Config{Dir: *dir, Log: log}.Open()
	if err != nil {
		log.Error("open snapshot store", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	if *id == "" {
		list(store)
		return
	}
	if err := summarise(store, *id); err != nil {
		log.Error("summarise snapshot", "id", *id, "error", err)
		os.Exit(1)
	}
}

func list(store *snapshot.Store) {
	metas := store.List()
	if len(metas) == 0 {
		fmt.Println("store is empty")
		return
	}
	for _, m := range metas {
		r := m.Region
		fmt.Printf("%s  seed=%d dim=%s scale=%d region=%dx%dx%d points=%d created=%s\n",
			m.ID, m.Seed, m.Dimension, r.Scale, r.SizeX, r.SizeY, r.SizeZ, m.Points,
			m.Created.Format("2006-01-02 15:04:05"))
	}
}

func summarise(store *snapshot.Store, id string) error {
	snap, err := store.Load(id)
	if err != nil {
		return err
	}

	counts := make(map[int32]int)
	for _, code := range snap.Codes() {
		counts[code]++
	}
	codes := make([]int32, 0, len(counts))
	for code := range counts {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool {
		if counts[codes[i]] != counts[codes[j]] {
			return counts[codes[i]] > counts[codes[j]]
		}
		return codes[i] < codes[j]
	})

	total := len(snap.Codes())
	for _, code := range codes {
		name := fmt.Sprintf("unknown code %d", code)
		if b, err := biome.ByCode(code); err == nil {
			name = b.String()
		}
		fmt.Printf("%-36s %8d  %5.1f%%\n", name, counts[code], float64(counts[code])*100/float64(total))
	}
	return nil
}
