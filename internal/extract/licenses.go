// Copyright 2026 The mottools Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package extract

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/openmot/mottools/internal/catalog"
)

// Unlicensed is the literal used wherever no usable license was detected.
const Unlicensed = "unlicensed"

// openLicenses is the set of license slugs MOT treats as open.
var openLicenses = map[string]struct{}{
	"apache-2.0":                {},
	"mit":                       {},
	"bsd":                       {},
	"gpl":                       {},
	"lgpl":                      {},
	"mpl-2.0":                   {},
	"cc-by-4.0":                 {},
	"cc-by-sa-4.0":              {},
	"openrail":                  {},
	"bigscience-openrail-m":     {},
	"bigscience-bloom-rail-1.0": {},
	"creativeml-openrail-m":     {},
}

// IsOpenLicense reports whether the license slug is a known open license.
func IsOpenLicense(license string) bool {
	_, ok := openLicenses[strings.ToLower(license)]
	return ok
}

// DetectLicense returns the explicit license declared in the model's detail
// payload, unless it is absent or the sentinel "other". A LICENSE file in
// the repository alone does not yield a license string; its text would need
// manual review, so the result stays "unlicensed".
func DetectLicense(m *catalog.ScrapedModel) string {
	license := gjson.GetBytes(m.Info, "cardData.license")
	if license.IsArray() {
		// Multiple declared licenses; take the first. An empty list means
		// no license was declared.
		arr := license.Array()
		if len(arr) == 0 {
			return Unlicensed
		}
		license = arr[0]
	}
	if v := license.String(); v != "" && v != "other" {
		return v
	}
	return Unlicensed
}

// HasLicenseFile reports whether the file listing contains a LICENSE or
// LICENSE.md entry, which flags the record for manual license follow-up.
func HasLicenseFile(m *catalog.ScrapedModel) bool {
	for _, f := range m.Files {
		upper := strings.ToUpper(f)
		if upper == "LICENSE" || upper == "LICENSE.MD" {
			return true
		}
	}
	return false
}
