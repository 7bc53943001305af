package store

import (
	"strconv"

	"github.com/lib/pq"

	"github.com/wso2/media-metadata-service/internal/media/model"
)

// scanMediaRow converts one procedure result row into the plain transfer
// struct the aggregation core consumes. The core never sees a raw result set.
func scanMediaRow(row map[string]interface{}) model.RelationalMediaRow {

	return model.RelationalMediaRow{
		MediaID:          toInt(row["media_id"]),
		FileName:         toString(row["file_name"]),
		Category:         toString(row["category"]),
		Width:            toInt(row["width"]),
		Height:           toInt(row["height"]),
		FileSizeKB:       toInt(row["file_size_kb"]),
		DerivativeSizeKB: toInt(row["derivative_size_kb"]),
		StatusCode:       toString(row["status_code"]),
	}
}

// idListArgument adapts a media id batch to a single array-typed procedure
// parameter, keeping the bound parameter count constant per batch.
func idListArgument(mediaIDs []int) interface{} {

	ids := make([]int64, len(mediaIDs))
	for i, id := range mediaIDs {
		ids[i] = int64(id)
	}
	return pq.Array(ids)
}

func toInt(val interface{}) int {
	switch v := val.(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float64:
		return int(v)
	case []byte:
		if i, err := strconv.Atoi(string(v)); err == nil {
			return i
		}
	case string:
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return 0
}

func toString(val interface{}) string {
	switch v := val.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	}
	return ""
}

func toBool(val interface{}) bool {
	switch v := val.(type) {
	case bool:
		return v
	case string:
		return v == "true" || v == "t" || v == "Y"
	case []byte:
		s := string(v)
		return s == "true" || s == "t" || s == "Y"
	}
	return false
}
