package credentials

import (
	"encoding/csv"
	"os"
	"strconv"

	seederrors "booking-demo-seeder/internal/errors"
)

// WriteReport writes the cleartext credential report as CSV with a
// `user_id,email,password` header, one row per user. Callers invoke it
// only after the data transaction has committed, so a failure here leaves
// the store updated but the report missing; the returned ReportError makes
// that asymmetry explicit instead of hiding it.
func WriteReport(path string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return seederrors.NewReportError(path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"user_id", "email", "password"}); err != nil {
		return seederrors.NewReportError(path, err)
	}
	for _, rec := range records {
		row := []string{strconv.FormatInt(rec.UserID, 10), rec.Email, rec.Password}
		if err := w.Write(row); err != nil {
			return seederrors.NewReportError(path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return seederrors.NewReportError(path, err)
	}
	if err := f.Close(); err != nil {
		return seederrors.NewReportError(path, err)
	}
	return nil
}
