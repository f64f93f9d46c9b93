// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// minReplyCapacity is one payload byte plus the NUL terminator.
const minReplyCapacity = 2

// validate checks the merged [StructuredConfig]. Only fields set to a
// nonsensical value are rejected here; missing fields are the business of the
// client or server views.
func (cfg *StructuredConfig) validate() error {
	if cfg.Protocol.ReplyCapacity != 0 && cfg.Protocol.ReplyCapacity < minReplyCapacity {
		return ErrInvalidProtocolConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.ReplyCapacity < minReplyCapacity {
		return ErrInvalidProtocolConfigs
	}

	if strings.TrimSpace(cfg.DefaultHost) == "" {
		return ErrInvalidClientConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Protocol.ReplyCapacity < minReplyCapacity {
		return ErrInvalidProtocolConfigs
	}

	if cfg.Server.TCPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" && cfg.Storage.Files.DataFile == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.Version == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
