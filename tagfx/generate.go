// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package tagfx

//go:generate mockgen -destination=mock/mock_tagfx.go -package=mock github.com/gamesmiths-guild/forge/tagfx Container,Requirements,ChangeNotifier,Mutator
