package filestorage

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

func strconvMillis(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}

// validateKey rejects keys that could escape the bucket directory.
func validateKey(key string) error {
	if key == "" || key == "." || key == ".." {
		return fmt.Errorf("invalid storage key %q", key)
	}
	if strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return fmt.Errorf("invalid storage key %q", key)
	}
	return nil
}

func validateBucket(bucket string) error {
	if err := validateKey(bucket); err != nil {
		return fmt.Errorf("invalid bucket %q", bucket)
	}
	return nil
}
