package common

// TernVersion is the current semantic version of the whole toolchain.
const TernVersion = "0.1.0"

// TernManifestName is the file name of a Tern project manifest.
const TernManifestName = "tern.toml"

// SrcFileExtension is the file extension of a Tern source file.
const SrcFileExtension = ".tern"
