package util

import (
	"os"
	"runtime"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
)

func GetHomeDir() string {
	userHome, err := homedir.Dir()
	if err != nil {
		// workaround for cygwin if we're on windows but couldn't get a homedir
		if runtime.GOOS == "windows" && len(os.Getenv("HOME")) > 0 {
			userHome = os.Getenv("HOME")
		}
	}

	return userHome
}

func TryExpandHomeDir(in string) string {
	if !strings.HasPrefix(in, "~") {
		return in
	}

	expanded, err := homedir.Expand(in)
	if err != nil {
		return in
	}
	return expanded
}

func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
