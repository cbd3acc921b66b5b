// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package shortcut

// DefaultKey is the storage key used when none is configured. The minimal
// start page stored its list under "shortcuts".
const DefaultKey = "aquaHome.shortcuts"

var defaultShortcuts = List{
	{Name: "CourseWeb", URL: "https://courseweb.sliit.lk"},
	{Name: "ChatGPT", URL: "https://chat.openai.com"},
	{Name: "DeepSeek", URL: "https://www.deepseek.com"},
	{Name: "MGX AI", URL: "https://mgx.ai"},
}

// Defaults returns a fresh copy of the built-in default list.
func Defaults() List {
	return defaultShortcuts.Clone()
}
