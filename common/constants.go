package common

const (
	// SrcFileExtension is the extension recognized for theory source files.
	SrcFileExtension = ".dk"

	// ProjectFileName is the name of a project's TOML configuration file.
	ProjectFileName = "holcore-mod.toml"

	// BundleFileName is the name of a multi-project workspace manifest.
	BundleFileName = "holcore.yaml"

	// HolcoreVersion is the version reported by `holcore version`.
	HolcoreVersion = "0.1.0"
)
