package models

// ServerInfo describes a running column server and the protocol conventions
// it shares with its clients.
type ServerInfo struct {
	Version         string `json:"version"`
	ReplyCapacity   int    `json:"reply_capacity"`
	Columns         int    `json:"columns"`
	WholeFileMarker string `json:"whole_file_marker"`
	QuitMarker      string `json:"quit_marker"`
}
