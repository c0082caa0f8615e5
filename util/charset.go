package util

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/qiniu/iconv"
	log "github.com/sirupsen/logrus"
)

const defaultEncoding = "UTF-8"

var (
	reCharset = regexp.MustCompile(`charset=([A-Za-z0-9_.:+-]+)`)
	utf8BOM   = []byte{0xEF, 0xBB, 0xBF}
)

func sameEncoding(enc1, enc2 string) bool {
	enc1 = strings.Replace(strings.ToLower(enc1), "-", "", -1)
	enc2 = strings.Replace(strings.ToLower(enc2), "-", "", -1)
	return enc1 == enc2
}

// isUTF8Compatible returns true for charsets which need no conversion.
// "CHARSET" is the placeholder of templates generated by xgettext.
func isUTF8Compatible(charset string) bool {
	return charset == "" ||
		charset == "CHARSET" ||
		sameEncoding(charset, defaultEncoding) ||
		sameEncoding(charset, "us-ascii") ||
		sameEncoding(charset, "ascii")
}

// headerMeta returns the msgstr of the header entry, or "" if the first
// message is not the header. Only the lines up to the end of the header
// entry are read.
func headerMeta(data []byte) string {
	var (
		meta     strings.Builder
		inMsgid  bool
		inMsgstr bool
	)

	for len(data) > 0 {
		line := data
		if idx := bytes.IndexByte(data, '\n'); idx >= 0 {
			line, data = data[:idx], data[idx+1:]
		} else {
			data = nil
		}

		l := classifyLine(string(line))
		switch {
		case l.kind == lineUnknown:
			continue
		case inMsgstr:
			if l.kind != lineString {
				return meta.String()
			}
			meta.WriteString(l.value)
		case inMsgid:
			switch {
			case l.kind == lineString && l.value == "":
			case l.kind == lineKeyword && l.keyword == "msgstr" && l.index <= 0:
				inMsgstr = true
				meta.WriteString(l.value)
			default:
				return ""
			}
		case l.kind == lineBlank, l.kind == lineComment && !l.obsolete:
		case l.kind == lineKeyword && l.keyword == "msgid" && l.value == "" && !l.obsolete:
			inMsgid = true
		default:
			return ""
		}
	}
	return meta.String()
}

// SniffCharset returns the charset declared in the Content-Type field of
// the header entry, or "" if none is declared. Text outside the header
// entry is not looked at.
func SniffCharset(data []byte) string {
	data = bytes.TrimPrefix(data, utf8BOM)
	for _, line := range strings.Split(headerMeta(data), "\n") {
		idx := strings.Index(line, ":")
		if idx < 0 || !strings.EqualFold(strings.TrimSpace(line[:idx]), "Content-Type") {
			continue
		}
		if m := reCharset.FindStringSubmatch(line[idx+1:]); m != nil {
			return m[1]
		}
	}
	return ""
}

// DecodeCatalogCharset converts catalog data to UTF-8 according to the
// charset of its Content-Type header, and returns the charset found.
func DecodeCatalogCharset(data []byte) ([]byte, string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	charset := SniffCharset(data)
	if isUTF8Compatible(charset) {
		return data, charset, nil
	}

	cd, err := iconv.Open(defaultEncoding, charset)
	if err != nil {
		return nil, charset, fmt.Errorf("%w: unsupported charset %q: %v",
			ErrMalformedCatalog, charset, err)
	}
	defer cd.Close()

	log.Debugf("convert catalog from %s to %s", charset, defaultEncoding)
	return []byte(cd.ConvString(string(data))), charset, nil
}
