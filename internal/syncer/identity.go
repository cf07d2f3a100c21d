package syncer

// Fork identity. These values must survive every upstream merge unchanged;
// the resolver rewrites them back in and the verifier checks for them.
const (
	UpstreamPackageName = "zen-mcp-server"
	ForkPackageName     = "martin-zen-mcp-server"
	PatchModule         = "martin_patches.py"
	ServerEntryPoint    = "server.py"
	PatchImport         = "import martin_patches"
)
