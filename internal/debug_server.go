package internal

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
)

//go:embed inspect.html
var templatesFS embed.FS

type InspectRow struct {
	Key         string
	Timestamp   string
	Title       string
	Normalized  string
	Probability string
	Label       string
}

type RowMapper func(key string, val []byte) InspectRow
type StatsProvider func() map[string]any

type PageData struct {
	Prefix string
	Items  []InspectRow
	Stats  map[string]any
}

// StartDebugServer serves a read-only HTML view over the prediction store.
// It iterates whatever key prefix the query asks for and renders one row
// per entry, plus whatever stats the caller wants on top.
func StartDebugServer(db *badger.DB, port int, endpoint string, mapper RowMapper, statsProvider StatsProvider) {
	mux := http.NewServeMux()
	tmpl := template.Must(template.ParseFS(templatesFS, "inspect.html"))

	if mapper == nil {
		mapper = DefaultMapper
	}

	mux.HandleFunc(endpoint, func(w http.ResponseWriter, r *http.Request) {
		prefix := r.URL.Query().Get("prefix")
		if prefix == "" {
			prefix = "pred:"
		}

		data := PageData{
			Prefix: prefix,
			Stats:  make(map[string]any),
		}
		if statsProvider != nil {
			data.Stats = statsProvider()
		}

		_ = db.View(func(txn *badger.Txn) error {
			it := txn.NewIterator(badger.DefaultIteratorOptions)
			defer it.Close()
			for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
				item := it.Item()
				_ = item.Value(func(val []byte) error {
					data.Items = append(data.Items, mapper(string(item.Key()), val))
					return nil
				})
			}
			return nil
		})

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = tmpl.Execute(w, data)
	})

	go func() {
		_ = http.ListenAndServe(fmt.Sprintf("0.0.0.0:%d", port), mux)
	}()
}

// DefaultMapper decodes a stored prediction record; anything that does not
// decode falls back to a raw byte-count row.
func DefaultMapper(key string, val []byte) InspectRow {
	row := InspectRow{
		Key:         key,
		Timestamp:   "--:--:--",
		Title:       "Size: " + strconv.Itoa(len(val)) + " bytes",
		Probability: "-",
		Label:       "-",
	}

	parts := strings.Split(key, ":")
	if len(parts) >= 3 {
		if tsNano, err := strconv.ParseInt(parts[1], 10, 64); err == nil {
			row.Timestamp = time.Unix(0, tsNano).UTC().Format("15:04:05")
		}
	}

	var record struct {
		Title           string  `json:"title"`
		NormalizedTitle string  `json:"normalized_title"`
		Probability     float64 `json:"probability"`
		Label           int     `json:"label"`
	}
	if err := json.Unmarshal(val, &record); err != nil {
		return row
	}
	row.Title = record.Title
	row.Normalized = record.NormalizedTitle
	row.Probability = fmt.Sprintf("%.6f", record.Probability)
	row.Label = strconv.Itoa(record.Label)
	return row
}
