package domain

import "time"

type BlockKind string

const (
	BlockTitle        BlockKind = "title"
	BlockHeading      BlockKind = "heading"
	BlockText         BlockKind = "text"
	BlockCommand      BlockKind = "command"
	BlockCategory     BlockKind = "category"
	BlockListItem     BlockKind = "list_item"
	BlockProjectTitle BlockKind = "project_title"
	BlockField        BlockKind = "field"
	BlockFooter       BlockKind = "footer"
	BlockError        BlockKind = "error"
	BlockBootLine     BlockKind = "boot_line"
	BlockBootReady    BlockKind = "boot_ready"
)

// Block is one line of rendered output. A non-zero RevealDelay asks the
// renderer to reveal Text one character at a time at that interval.
type Block struct {
	Kind        BlockKind     `json:"kind"`
	Label       string        `json:"label,omitempty"`
	Text        string        `json:"text"`
	Indent      int           `json:"indent,omitempty"`
	SpaceBefore bool          `json:"space_before,omitempty"`
	RevealDelay time.Duration `json:"reveal_delay,omitempty"`
}

func (b Block) Animated() bool {
	return b.RevealDelay > 0 && b.Text != ""
}

type Output struct {
	Blocks []Block `json:"blocks"`
}

func (o Output) Empty() bool {
	return len(o.Blocks) == 0
}

