package cli

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/curbside/pkg/repository/firestore"
)

func TestGetIndexConfig(t *testing.T) {
	t.Run("default collection", func(t *testing.T) {
		cfg := getIndexConfig("")
		gt.Array(t, cfg.Collections).Length(1).Required()
		gt.Value(t, cfg.Collections[0].Name).Equal("entries")
		gt.Array(t, cfg.Collections[0].Indexes).Length(1).Required()

		fields := cfg.Collections[0].Indexes[0].Fields
		gt.Array(t, fields).Length(3).Required()
		gt.Value(t, fields[0].Path).Equal("Date")
		gt.Value(t, fields[1].Path).Equal("Action")
		gt.Value(t, fields[2].Path).Equal("CreatedAt")
	})

	t.Run("prefixed collection", func(t *testing.T) {
		cfg := getIndexConfig("staging")
		gt.Value(t, cfg.Collections[0].Name).Equal("staging_entries")
		gt.Value(t, cfg.Collections[0].Name).Equal(firestore.CollectionName("staging", firestore.EntryCollection))
	})
}
