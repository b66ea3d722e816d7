// Package data bundles the default item, quest and balance files.
package data

import _ "embed"

//go:embed items.json
var Items []byte

//go:embed quests.json
var Quests []byte

//go:embed balance.yaml
var Balance []byte
