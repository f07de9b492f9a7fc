package ipp

import "github.com/MartinTeoZhang/snarkpack-slim/transcript"

// appendRound absorbs one round's cross-commitments and cross-claims into
// the transcript in the fixed order prover and verifier must agree on:
// TIPP key cross-commitment, TIPP claim cross-term, MIPP key
// cross-commitment, MIPP claim cross-term. TIPP and MIPP share this single
// append before the round's one challenge is squeezed, so the same
// per-round challenge folds both recursions.
func appendRound(tr *transcript.Transcript, tc TIPPCrossComm, cc ClaimCrossTIPP, mc MIPPCrossComm, mcc ClaimCrossMIPP) error {
	if err := tr.AppendGT("tipp-comm-left-t", tc.LeftT); err != nil {
		return err
	}
	if err := tr.AppendGT("tipp-comm-left-u", tc.LeftU); err != nil {
		return err
	}
	if err := tr.AppendGT("tipp-comm-right-t", tc.RightT); err != nil {
		return err
	}
	if err := tr.AppendGT("tipp-comm-right-u", tc.RightU); err != nil {
		return err
	}
	if err := tr.AppendGT("tipp-claim-left", cc.Left); err != nil {
		return err
	}
	if err := tr.AppendGT("tipp-claim-right", cc.Right); err != nil {
		return err
	}
	if err := tr.AppendGT("mipp-comm-left", mc.Left); err != nil {
		return err
	}
	if err := tr.AppendGT("mipp-comm-right", mc.Right); err != nil {
		return err
	}
	if err := tr.AppendG1("mipp-claim-left", mcc.Left); err != nil {
		return err
	}
	if err := tr.AppendG1("mipp-claim-right", mcc.Right); err != nil {
		return err
	}
	return nil
}
