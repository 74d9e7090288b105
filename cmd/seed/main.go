// Command seed exports the content catalog, the seeded blog posts, and the
// navigation menu definitions as JSON files for the static front-end build.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"

	"nvlaw-backend/internal/catalog"
	"nvlaw-backend/internal/config"
	"nvlaw-backend/internal/menu"
	"nvlaw-backend/internal/store"
)

func main() {
	outDir := flag.String("out", "seed-export", "output directory for the JSON exports")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal(err)
	}

	cat := catalog.Load()
	for _, family := range catalog.Families() {
		pages, _ := cat.Pages(family)
		writeJSON(filepath.Join(*outDir, "catalog_"+string(family)+".json"), pages)
	}

	st := store.Seeded(cfg.Timezone)
	writeJSON(filepath.Join(*outDir, "blog_posts.json"), st.BlogPosts(context.Background()))

	writeJSON(filepath.Join(*outDir, "menus.json"), menu.DefaultConfigs(cat))

	log.Printf("seed export written to %s", *outDir)
}

func writeJSON(path string, v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		log.Fatal(err)
	}
}
