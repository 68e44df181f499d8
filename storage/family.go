// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sort"

	"github.com/bitmark-inc/tanglestore/fault"
	"github.com/bitmark-inc/tanglestore/model"
)

// Family - a column family, a partition of the key space
type Family struct {
	Name   string
	Prefix byte
}

// the reserved family for metadata payloads and named entries
var metadataFamily = Family{Name: "metadata", Prefix: 'Z'}

// record families - membership is static
var recordFamilies = map[model.Type]Family{
	model.TransactionType: {Name: "transaction", Prefix: 'T'},
	model.MilestoneType:   {Name: "milestone", Prefix: 'M'},
	model.StateDiffType:   {Name: "state-diff", Prefix: 'D'},
	model.ApproveeType:    {Name: "approvee", Prefix: 'A'},
	model.AddressType:     {Name: "address", Prefix: 'R'},
	model.BundleType:      {Name: "bundle", Prefix: 'B'},
	model.TagType:         {Name: "tag", Prefix: 'G'},
	model.ObsoleteTagType: {Name: "obsolete-tag", Prefix: 'O'},
}

// MetadataFamily - the reserved metadata family
func MetadataFamily() Family {
	return metadataFamily
}

// Families - every declared family in prefix order
func Families() []Family {
	families := make([]Family, 0, len(recordFamilies)+1)
	for _, f := range recordFamilies {
		families = append(families, f)
	}
	families = append(families, metadataFamily)
	sort.Slice(families, func(i, j int) bool {
		return families[i].Prefix < families[j].Prefix
	})
	return families
}

// FamilyOf - the family holding records of a type
func FamilyOf(t model.Type) (Family, error) {
	f, ok := recordFamilies[t]
	if !ok {
		return Family{}, fault.ErrUnknownRecordType
	}
	return f, nil
}

// FamilyByName - look up a declared family by its name
func FamilyByName(name string) (Family, bool) {
	for _, f := range Families() {
		if name == f.Name {
			return f, true
		}
	}
	return Family{}, false
}

// check that a set of families can share one key space
func validateFamilies(families []Family) error {
	seen := make(map[byte]struct{}, len(families))
	for _, f := range families {
		if 0 == f.Prefix || 0xff == f.Prefix {
			return fault.ErrInvalidFamilyPrefix
		}
		if _, ok := seen[f.Prefix]; ok {
			return fault.ErrDuplicateFamilyPrefix
		}
		seen[f.Prefix] = struct{}{}
	}
	return nil
}

// prepend the prefix onto the key
func (f Family) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = f.Prefix
	return append(prefixedKey, key...)
}

// strip the prefix returning a copy
func (f Family) stripKey(key []byte) []byte {
	dataKey := make([]byte, len(key)-1)
	copy(dataKey, key[1:])
	return dataKey
}

// metadata key of a record: tag ++ key
func recordMetadataKey(t model.Type, key []byte) []byte {
	mk := make([]byte, 1, len(key)+1)
	mk[0] = byte(t)
	return append(mk, key...)
}

// key of a named metadata entry: 0x00 ++ name
func namedKey(name string) []byte {
	nk := make([]byte, 1, len(name)+1)
	nk[0] = byte(model.NullType)
	return append(nk, name...)
}
