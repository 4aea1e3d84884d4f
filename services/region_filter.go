package services

import (
	"fmt"
	"strings"

	"BudgetPilot/storage"
)

// RegionKeywords are the travel regions the curated attraction file keeps.
// The trailing space in "성수 " is significant.
var RegionKeywords = []string{
	"강남구", "마포구", "성수동", "성수 ", "종로구", "가평", "인천", "수원", "대전", "천안",
	"단양", "춘천", "속초", "강릉", "전주", "여수", "목포", "광주", "부산", "대구",
	"경주", "통영", "제주", "울릉",
}

// RegionAddressColumns are the address columns checked by FilterSheetByRegion.
var RegionAddressColumns = []string{"소재지도로명주소", "소재지지번주소"}

// FilterSheetByRegion keeps the records whose address columns, joined by a
// space, contain at least one keyword. Matching is case-sensitive substring
// containment. It fails when none of the address columns exist.
func FilterSheetByRegion(sheet *storage.Sheet, keywords, addressColumns []string) (*storage.Sheet, error) {
	idx := make([]int, len(addressColumns))
	found := false
	for k, col := range addressColumns {
		idx[k] = sheet.Column(col)
		found = found || idx[k] >= 0
	}
	if !found {
		return nil, fmt.Errorf("region filter: none of %v in header", addressColumns)
	}

	out := &storage.Sheet{Header: sheet.Header, Records: make([][]string, 0, len(sheet.Records))}
	for _, record := range sheet.Records {
		parts := make([]string, len(idx))
		for k, i := range idx {
			if i >= 0 && i < len(record) {
				parts[k] = record[i]
			}
		}
		combined := strings.Join(parts, " ")
		for _, kw := range keywords {
			if strings.Contains(combined, kw) {
				out.Records = append(out.Records, record)
				break
			}
		}
	}
	return out, nil
}
