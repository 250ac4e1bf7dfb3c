package releases

// stages lists the release checklist items in the order they are to be done.
// Never modify this slice, Stages hands out copies.
var stages = []string{
	"Is the repo clean?",
	"If this is a minor release, have you made the release branch?",
	"Is the repo on the current release branch?",
	"Have all the discussions in the 'x.y.z discussions' ticket been resolved?",
	"If this is a patch release, have all the PRs in the cherry-pick GitHub project been added to the release branch?",
	"Have all the deprecations been either removed or deferred to a later release?\n" +
		"      Deprecations are removed on a case-by-case basis with each minor (3.x) release.\n" +
		"      Corresponding UGen and primitive code should also be removed.\n" +
		"      Be careful when deprecating UGens and be considerate of alternate clients!",
	"Have all the removed deprecations been documented in the changelog?",
	"Have you reviewed the platform support information in the main README.md for accuracy?",

	// Version and changelog.
	"Have you updated SCVersion.txt?",
	"Have you updated CHANGELOG.md with information about merged PRs?",
	"Have you updated CHANGELOG.md with information about platform support changes?",

	// Help files, merging and tagging.
	"Have you made sure the schelp file 'News in 3.x' is up to date with the changelog by running the conversion script?",
	"Have you made sure HelpSource/Help.schelp points to the latest 'News in 3.x' schelp file?",
	"If this is a proper release, have you updated the release history in README.md?",
	"If this is a proper release, have you merged the current release branch into master with git merge --no-ff?",
	"Have you tagged the release?",
	"Did you create the release announcement text?",
	"Have you created a release on GitHub?",

	// Artifacts.
	"Have you run ./package/create_source_tarball.sh -v <version> (where version is the version tag, e.g. Version-3.11.0) to create a source tarball (including submodules)?",
	"Have you optionally run the script with -s <email-or-keyid> (where email-or-keyid is a valid PGP key id of the release manager) to also create a detached PGP signature for the source tarball?",
	"Have you uploaded source tarball (and optionally detached PGP signature)?",
	"Are builds for macOS, Linux, and Windows uploaded from CI?",
	"Have you made sure to note known-to-work platform versions and any changes in platform support on the Github release page?",
	"If it is a full release, did you update the website download page?",

	// Plugins and the wiki.
	"Did you do the same for sc3-plugins?",
	"Did you update the sc3-plugins page (the one at https://github.com/supercollider/sc3-plugins/tree/master/website)?",
	"If it's a proper release, did you update the Wikipedia page?",

	// Announcements.
	"Have you created the text with an abbreviated changelog for announcing?",
	"Did you announce on GitHub website?",
	"Did you announce on sc-users mailing list?",
	"Did you announce on sc-dev mailing list?",
	"Did you announce on scsynth.org?",
	"Did you announce on Slack #general?",
	"Did you announce on Facebook group?",
	"Did you announce on Reddit (/r/supercollider)?",

	// Back-merging.
	"If it's a beta release, did you merge the current release branch into develop? Do not merge the release branch into master yet!",
	"If it's a proper release, did you merge master into develop?",
}

// Stages returns the release checklist, one prompt per item, in order.
// Every call returns a fresh copy.
func Stages() []string {
	return append([]string(nil), stages...)
}
