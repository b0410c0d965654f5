//go:build mobile

// Package mobile is the ebitenmobile binding entry point for Android (.aar)
// and iOS (.xcframework) builds.
//
// The data directory must be copied next to this file first, because
// //go:embed cannot reach outside the package:
//
//	cp -r data mobile/
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.northharbor.blankisland -o build/android/blankisland.aar -v ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/ios/BlankIsland.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/northharbor/blankisland/pkg/app"
	"github.com/northharbor/blankisland/pkg/embedded"
)

func init() {
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{Verbose: true})
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	mobile.SetGame(gameApp)
}

// Dummy is an exported no-op so ebitenmobile recognizes the package.
func Dummy() {}
