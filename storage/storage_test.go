package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/korean"
	. "gopkg.in/check.v1"
)

// Hook up gocheck into the "go test" runner.
func Test(t *testing.T) { TestingT(t) }

type StorageSuite struct {
	dir string
}

var _ = Suite(&StorageSuite{})

var restaurantCols = []string{"사업장명", "도로명주소", "지번주소", "업태구분명"}

const restaurantCSV = "번호,사업장명,도로명주소,지번주소,업태구분명\n" +
	"1,맛집,서울 강남구 테헤란로 1,서울 강남구 역삼동 1,한식\n" +
	"2,국수집,부산 해운대구 1,,분식\n"

func (s *StorageSuite) SetUpTest(c *C) {
	s.dir = c.MkDir()
}

func (s *StorageSuite) write(c *C, name string, data []byte) string {
	p := filepath.Join(s.dir, name)
	c.Assert(os.WriteFile(p, data, 0644), IsNil)
	return p
}

func (s *StorageSuite) TestCandidatePathsDirectoryMajor(c *C) {
	got := CandidatePaths([]string{"a", "b"}, "x.csv", "y.csv")
	c.Assert(got, DeepEquals, []string{
		filepath.Join("a", "x.csv"), filepath.Join("a", "y.csv"),
		filepath.Join("b", "x.csv"), filepath.Join("b", "y.csv"),
	})
}

func (s *StorageSuite) TestPickExistingPath(c *C) {
	_, ok := PickExistingPath([]string{filepath.Join(s.dir, "nope.csv")})
	c.Assert(ok, Equals, false)

	second := s.write(c, "second.csv", []byte("a\n"))
	third := s.write(c, "third.csv", []byte("a\n"))
	c.Assert(os.Mkdir(filepath.Join(s.dir, "first.csv"), 0755), IsNil)

	got, ok := PickExistingPath([]string{filepath.Join(s.dir, "first.csv"), second, third})
	c.Assert(ok, Equals, true)
	c.Assert(got, Equals, second)
}

func (s *StorageSuite) TestReadTableUTF8WithBOM(c *C) {
	p := s.write(c, "bom.csv", append([]byte("\xef\xbb\xbf"), restaurantCSV...))
	res := ReadTable(p, restaurantCols, DefaultEncodings)
	c.Assert(res.Status, Equals, LoadOK)
	c.Assert(res.Encoding, Equals, "utf-8-sig")
	c.Assert(res.Table.Len(), Equals, 2)
	c.Assert(res.Table.Columns, DeepEquals, restaurantCols)
	c.Assert(res.Table.Rows[0].Get("사업장명"), Equals, "맛집")
}

func (s *StorageSuite) TestReadTableBOMOnlyMatchesUnderSig(c *C) {
	p := s.write(c, "bom.csv", append([]byte("\xef\xbb\xbf"), restaurantCSV...))
	res := ReadTable(p, []string{"번호", "사업장명"}, []Encoding{UTF8})
	c.Assert(res.Status, Equals, LoadUnreadable)
	c.Assert(res.Reason, Matches, ".*missing required columns.*")

	res = ReadTable(p, []string{"번호", "사업장명"}, []Encoding{UTF8, UTF8SIG})
	c.Assert(res.Status, Equals, LoadOK)
	c.Assert(res.Encoding, Equals, "utf-8-sig")
}

func (s *StorageSuite) TestReadTableCP949(c *C) {
	encoded, err := korean.EUCKR.NewEncoder().String(restaurantCSV)
	c.Assert(err, IsNil)
	p := s.write(c, "cp949.csv", []byte(encoded))

	res := ReadTable(p, restaurantCols, DefaultEncodings)
	c.Assert(res.Status, Equals, LoadOK)
	c.Assert(res.Encoding, Equals, "cp949")
	c.Assert(res.Table.Rows[1].Get("도로명주소"), Equals, "부산 해운대구 1")
	c.Assert(res.Table.Rows[1].Get("업태구분명"), Equals, "분식")
}

func (s *StorageSuite) TestReadTableTrimsHeaderAndProjects(c *C) {
	data := " 업태구분명 ,사업장명 ,도로명주소,지번주소,기타\n" +
		"카페,별다방,제주 제주시 1\n"
	p := s.write(c, "messy.csv", []byte(data))

	res := ReadTable(p, restaurantCols, DefaultEncodings)
	c.Assert(res.Status, Equals, LoadOK)
	c.Assert(res.Table.Columns, DeepEquals, restaurantCols)
	row := res.Table.Rows[0]
	c.Assert(row.Index, Equals, 0)
	c.Assert(row.Get("사업장명"), Equals, "별다방")
	c.Assert(row.Get("업태구분명"), Equals, "카페")
	c.Assert(row.Get("지번주소"), Equals, "")
	_, hasExtra := row.Fields["기타"]
	c.Assert(hasExtra, Equals, false)
}

func (s *StorageSuite) TestReadTableMissingColumnsIsUnreadable(c *C) {
	p := s.write(c, "wrong.csv", []byte("name,address\nA,B\n"))
	res := ReadTable(p, restaurantCols, DefaultEncodings)
	c.Assert(res.Status, Equals, LoadUnreadable)
	c.Assert(res.Path, Equals, p)
	c.Assert(res.Table.Len(), Equals, 0)
	c.Assert(res.Table.Columns, DeepEquals, restaurantCols)
	c.Assert(strings.Contains(res.Reason, "사업장명"), Equals, true)
}

func (s *StorageSuite) TestReadTableEmptyFile(c *C) {
	p := s.write(c, "empty.csv", nil)
	res := ReadTable(p, restaurantCols, DefaultEncodings)
	c.Assert(res.Status, Equals, LoadUnreadable)
	c.Assert(res.Table.Len(), Equals, 0)
}

func (s *StorageSuite) TestLoadDatasetMissing(c *C) {
	res := LoadDataset([]string{filepath.Join(s.dir, "a.csv"), filepath.Join(s.dir, "b.csv")}, restaurantCols, DefaultEncodings)
	c.Assert(res.Status, Equals, LoadMissing)
	c.Assert(res.Path, Equals, "")
	c.Assert(res.Table.Len(), Equals, 0)
	c.Assert(res.Table.Columns, DeepEquals, restaurantCols)
}

func (s *StorageSuite) TestLoadDatasetPicksFirstExisting(c *C) {
	p := s.write(c, "b.csv", []byte(restaurantCSV))
	res := LoadDataset([]string{filepath.Join(s.dir, "a.csv"), p}, restaurantCols, DefaultEncodings)
	c.Assert(res.Status, Equals, LoadOK)
	c.Assert(res.Path, Equals, p)
	c.Assert(res.Table.Len(), Equals, 2)
}

func (s *StorageSuite) TestReadTableXLSX(c *C) {
	f := excelize.NewFile()
	c.Assert(f.SetSheetRow("Sheet1", "A1", &[]string{"사업장명", "도로명주소", "지번주소", "업태구분명"}), IsNil)
	c.Assert(f.SetSheetRow("Sheet1", "A2", &[]string{"맛집", "서울 마포구 1", "", "한식"}), IsNil)
	p := filepath.Join(s.dir, "rest.xlsx")
	c.Assert(f.SaveAs(p), IsNil)
	c.Assert(f.Close(), IsNil)

	res := ReadTable(p, restaurantCols, DefaultEncodings)
	c.Assert(res.Status, Equals, LoadOK)
	c.Assert(res.Encoding, Equals, "xlsx")
	c.Assert(res.Table.Len(), Equals, 1)
	c.Assert(res.Table.Rows[0].Get("도로명주소"), Equals, "서울 마포구 1")
}

func (s *StorageSuite) TestWriteSheetUTF8BOMRoundTrip(c *C) {
	p := filepath.Join(s.dir, "out", "regions.csv")
	sheet := &Sheet{
		Header:  []string{"관광지명", "소재지도로명주소"},
		Records: [][]string{{"해변", "강원 강릉시 1"}, {"공원, 광장", "부산 중구"}},
	}
	c.Assert(WriteSheetUTF8BOM(p, sheet), IsNil)

	raw, err := os.ReadFile(p)
	c.Assert(err, IsNil)
	c.Assert(strings.HasPrefix(string(raw), "\xef\xbb\xbf관광지명"), Equals, true)

	back, enc, err := ReadSheet(p, []Encoding{UTF8SIG}, nil)
	c.Assert(err, IsNil)
	c.Assert(enc, Equals, "utf-8-sig")
	c.Assert(back.Header, DeepEquals, sheet.Header)
	c.Assert(back.Records, DeepEquals, sheet.Records)
}

func (s *StorageSuite) TestDecodeRejectsInvalidUTF8(c *C) {
	_, err := UTF8.Decode([]byte{0xff, 0xfe, 'a'})
	c.Assert(err, NotNil)
}
