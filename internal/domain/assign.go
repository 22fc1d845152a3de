package domain

// AssignmentDisabledMessage is printed by the assign-issues binary.
// Auto-assignment used a long-lived personal access token, caused unexpected
// assignments upstream and leaked credentials. It must stay a no-op.
const AssignmentDisabledMessage = `Issue auto-assignment has been disabled to protect upstream projects and
credentials. Replace this script with an audited workflow that requires
human confirmation before reassigning issues.`
